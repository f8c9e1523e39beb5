package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cheonTH/singlelife/internal/models"
)

// ErrNoResults is returned when a geocode query matches nothing. Call sites
// show the transient "not found" notice instead of an error alert.
var ErrNoResults = errors.New("no matching place or address")

// KakaoClient calls the Kakao Local REST endpoints
type KakaoClient struct {
	baseURL string
	restKey string
	http    *http.Client
	log     zerolog.Logger
}

// NewKakaoClient creates a Kakao Local client
func NewKakaoClient(baseURL, restKey string, log zerolog.Logger) *KakaoClient {
	return &KakaoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		restKey: restKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// kakaoDocument is one hit in a Kakao Local response. x is longitude and
// y is latitude, both as strings.
type kakaoDocument struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	Phone           string `json:"phone"`
	X               string `json:"x"`
	Y               string `json:"y"`
}

type kakaoResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

func (k *KakaoClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+k.restKey)

	resp, err := k.http.Do(req)
	if err != nil {
		return fmt.Errorf("kakao request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("kakao returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode kakao response: %w", err)
	}
	return nil
}

// SearchKeyword runs a keyword search around origin. radiusM and size are
// passed straight to the provider; distance filtering happens afterwards in
// the ranker.
func (k *KakaoClient) SearchKeyword(ctx context.Context, keyword string, origin Coordinate, radiusM float64, size int) ([]models.Place, error) {
	params := url.Values{}
	params.Set("query", keyword)
	params.Set("x", strconv.FormatFloat(origin.Lng, 'f', -1, 64))
	params.Set("y", strconv.FormatFloat(origin.Lat, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(int(radiusM)))
	params.Set("size", strconv.Itoa(size))

	var res kakaoResponse
	if err := k.get(ctx, "/v2/local/search/keyword.json", params, &res); err != nil {
		return nil, err
	}

	out := make([]models.Place, 0, len(res.Documents))
	for _, doc := range res.Documents {
		place, err := doc.toPlace()
		if err != nil {
			k.log.Debug().Err(err).Str("place_id", doc.ID).Msg("Skipping malformed kakao document")
			continue
		}
		out = append(out, place)
	}
	return out, nil
}

// GeocodeAddress resolves a free-text address to a coordinate. An empty
// document list yields ErrNoResults.
func (k *KakaoClient) GeocodeAddress(ctx context.Context, address string) (Coordinate, string, error) {
	params := url.Values{}
	params.Set("query", address)

	var res kakaoResponse
	if err := k.get(ctx, "/v2/local/search/address.json", params, &res); err != nil {
		return Coordinate{}, "", err
	}
	if len(res.Documents) == 0 {
		return Coordinate{}, "", ErrNoResults
	}

	doc := res.Documents[0]
	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return Coordinate{}, "", fmt.Errorf("bad latitude %q: %w", doc.Y, err)
	}
	lng, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return Coordinate{}, "", fmt.Errorf("bad longitude %q: %w", doc.X, err)
	}
	return Coordinate{Lat: lat, Lng: lng}, doc.AddressName, nil
}

func (d kakaoDocument) toPlace() (models.Place, error) {
	lat, err := strconv.ParseFloat(d.Y, 64)
	if err != nil {
		return models.Place{}, fmt.Errorf("bad latitude %q: %w", d.Y, err)
	}
	lng, err := strconv.ParseFloat(d.X, 64)
	if err != nil {
		return models.Place{}, fmt.Errorf("bad longitude %q: %w", d.X, err)
	}
	address := d.RoadAddressName
	if address == "" {
		address = d.AddressName
	}
	return models.Place{
		ID:      d.ID,
		Name:    d.PlaceName,
		Address: address,
		Phone:   d.Phone,
		Lat:     lat,
		Lng:     lng,
	}, nil
}
