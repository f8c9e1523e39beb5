package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestKakaoSearchKeyword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/local/search/keyword.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "KakaoAK rest-key" {
			t.Errorf("Authorization = %q", got)
		}
		q := r.URL.Query()
		if q.Get("radius") != "1000" || q.Get("size") != "5" {
			t.Errorf("radius = %q size = %q", q.Get("radius"), q.Get("size"))
		}
		w.Write([]byte(`{
			"documents": [
				{
					"id": "100",
					"place_name": "크린토피아",
					"address_name": "서울 중구 태평로1가",
					"road_address_name": "서울 중구 세종대로 110",
					"phone": "02-000-0000",
					"x": "126.9784",
					"y": "37.5667"
				},
				{
					"id": "101",
					"place_name": "broken",
					"x": "not-a-number",
					"y": "37.5"
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewKakaoClient(srv.URL, "rest-key", zerolog.Nop())
	places, err := client.SearchKeyword(context.Background(), "세탁소", seoulCityHall, 1000, 5)
	if err != nil {
		t.Fatalf("SearchKeyword: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("got %d places, want the malformed one skipped", len(places))
	}
	p := places[0]
	if p.Name != "크린토피아" || p.Address != "서울 중구 세종대로 110" || p.Phone != "02-000-0000" {
		t.Fatalf("bad place: %+v", p)
	}
	if p.Lat != 37.5667 || p.Lng != 126.9784 {
		t.Fatalf("x/y swapped: lat=%v lng=%v", p.Lat, p.Lng)
	}
}

func TestKakaoSearchKeywordAddressFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"documents": [
				{"id": "1", "place_name": "noname", "address_name": "지번 주소", "road_address_name": "", "x": "127", "y": "37"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewKakaoClient(srv.URL, "rest-key", zerolog.Nop())
	places, err := client.SearchKeyword(context.Background(), "카페", seoulCityHall, 1000, 5)
	if err != nil {
		t.Fatalf("SearchKeyword: %v", err)
	}
	if places[0].Address != "지번 주소" {
		t.Fatalf("address = %q, want lot-number fallback", places[0].Address)
	}
}

func TestKakaoGeocodeAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/local/search/address.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"documents": [
				{"address_name": "서울 중구 태평로1가 31", "x": "126.9779", "y": "37.5663"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewKakaoClient(srv.URL, "rest-key", zerolog.Nop())
	coord, label, err := client.GeocodeAddress(context.Background(), "태평로")
	if err != nil {
		t.Fatalf("GeocodeAddress: %v", err)
	}
	if coord.Lat != 37.5663 || coord.Lng != 126.9779 {
		t.Fatalf("coord = %v", coord)
	}
	if label != "서울 중구 태평로1가 31" {
		t.Fatalf("label = %q", label)
	}
}

func TestKakaoGeocodeAddressNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"documents": []}`))
	}))
	defer srv.Close()

	client := NewKakaoClient(srv.URL, "rest-key", zerolog.Nop())
	if _, _, err := client.GeocodeAddress(context.Background(), "없는 주소"); !errors.Is(err, ErrNoResults) {
		t.Fatalf("err = %v, want ErrNoResults", err)
	}
}

func TestKakaoBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewKakaoClient(srv.URL, "bad-key", zerolog.Nop())
	if _, err := client.SearchKeyword(context.Background(), "카페", seoulCityHall, 1000, 5); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
