package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestGoogleNearbySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/place/nearbysearch/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("keyword") != "맛집" {
			t.Errorf("keyword = %q", q.Get("keyword"))
		}
		if q.Get("radius") != "1500" {
			t.Errorf("radius = %q", q.Get("radius"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q", q.Get("key"))
		}
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"place_id": "abc",
					"name": "한식당",
					"vicinity": "서울 중구",
					"geometry": {"location": {"lat": 37.57, "lng": 126.98}}
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewGoogleClient(srv.URL, "test-key", "ko", zerolog.Nop())
	places, err := client.NearbySearch(context.Background(), "맛집", seoulCityHall, 1500)
	if err != nil {
		t.Fatalf("NearbySearch: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("got %d places", len(places))
	}
	p := places[0]
	if p.ID != "abc" || p.Name != "한식당" || p.Address != "서울 중구" || p.Lat != 37.57 || p.Lng != 126.98 {
		t.Fatalf("bad place: %+v", p)
	}
}

func TestGoogleNearbySearchZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	client := NewGoogleClient(srv.URL, "test-key", "ko", zerolog.Nop())
	places, err := client.NearbySearch(context.Background(), "없는곳", seoulCityHall, 1500)
	if err != nil {
		t.Fatalf("ZERO_RESULTS must not error: %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("got %d places, want 0", len(places))
	}
}

func TestGoogleNearbySearchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
	}))
	defer srv.Close()

	client := NewGoogleClient(srv.URL, "bad-key", "ko", zerolog.Nop())
	_, err := client.NearbySearch(context.Background(), "맛집", seoulCityHall, 1500)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if statusErr.Status != "REQUEST_DENIED" {
		t.Fatalf("status = %q", statusErr.Status)
	}
}

func TestGoogleNearbySearchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewGoogleClient(srv.URL, "test-key", "ko", zerolog.Nop())
	if _, err := client.NearbySearch(context.Background(), "맛집", seoulCityHall, 1500); err == nil {
		t.Fatal("expected transport error")
	}
}
