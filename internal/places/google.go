package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cheonTH/singlelife/internal/models"
)

// StatusError is a non-OK status in the places provider response body.
// ZERO_RESULTS never becomes a StatusError; it is the empty result set.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("places search failed with status %s", e.Status)
}

// GoogleClient calls the Google Places nearby-search endpoint
type GoogleClient struct {
	baseURL  string
	key      string
	language string
	http     *http.Client
	log      zerolog.Logger
}

// NewGoogleClient creates a Google Places client
func NewGoogleClient(baseURL, key, language string, log zerolog.Logger) *GoogleClient {
	return &GoogleClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		key:      key,
		language: language,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NearbySearch runs a keyword nearby search around origin. An empty slice
// with a nil error is the ZERO_RESULTS case; any other non-OK status comes
// back as a *StatusError.
func (g *GoogleClient) NearbySearch(ctx context.Context, keyword string, origin Coordinate, radiusM float64) ([]models.Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("radius", strconv.Itoa(int(radiusM)))
	params.Set("keyword", keyword)
	params.Set("language", g.language)
	params.Set("key", g.key)

	endpoint := g.baseURL + "/maps/api/place/nearbysearch/json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	var res googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	switch res.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []models.Place{}, nil
	default:
		g.log.Warn().Str("status", res.Status).Str("keyword", keyword).Msg("Places search rejected")
		return nil, &StatusError{Status: res.Status}
	}

	out := make([]models.Place, 0, len(res.Results))
	for _, r := range res.Results {
		out = append(out, models.Place{
			ID:      r.PlaceID,
			Name:    r.Name,
			Address: r.Vicinity,
			Lat:     r.Geometry.Location.Lat,
			Lng:     r.Geometry.Location.Lng,
		})
	}
	return out, nil
}
