package places

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cheonTH/singlelife/internal/models"
)

// SearchState distinguishes the four user-visible outcomes of a search.
type SearchState int

const (
	// StateIdle means no search has run yet.
	StateIdle SearchState = iota
	// StateResults means the search produced at least one ranked place.
	StateResults
	// StateEmpty means the search ran fine and matched nothing in range.
	StateEmpty
	// StateFailed means the provider or the network rejected the search.
	StateFailed
)

// Result is the outcome of one search pass
type Result struct {
	State  SearchState
	Places []models.Place
	Err    error
}

// NearbySearcher is the broad keyword search capability (Google Places)
type NearbySearcher interface {
	NearbySearch(ctx context.Context, keyword string, origin Coordinate, radiusM float64) ([]models.Place, error)
}

// KeywordSearcher is the category keyword search capability (Kakao Local)
type KeywordSearcher interface {
	SearchKeyword(ctx context.Context, keyword string, origin Coordinate, radiusM float64, size int) ([]models.Place, error)
}

// Geocoder resolves a free-text address to a coordinate
type Geocoder interface {
	GeocodeAddress(ctx context.Context, address string) (Coordinate, string, error)
}

// Config holds the search tuning for a Service
type Config struct {
	BroadRadiusM float64 // broad search: provider radius and distance cutoff
	BroadLimit   int     // broad search: result cap after ranking
	QueryRadiusM float64 // category search: radius sent to the provider
	CategoryCutM float64 // category search: distance cutoff after ranking
	CategorySize int     // category search: provider-side size parameter
}

// Service runs place searches around the current origin and ranks the hits
// by proximity. The origin comes from the location provider until the user
// pins one explicitly by geocoding an address.
type Service struct {
	broad    NearbySearcher
	category KeywordSearcher
	geo      Geocoder
	loc      LocationProvider
	cfg      Config
	log      zerolog.Logger

	mu       sync.Mutex
	override *Coordinate
	label    string
}

// NewService creates a place-search service
func NewService(broad NearbySearcher, category KeywordSearcher, geo Geocoder, loc LocationProvider, cfg Config, log zerolog.Logger) *Service {
	return &Service{
		broad:    broad,
		category: category,
		geo:      geo,
		loc:      loc,
		cfg:      cfg,
		log:      log,
	}
}

// Origin returns the coordinate searches run from, plus its display label
func (s *Service) Origin(ctx context.Context) (Coordinate, string) {
	s.mu.Lock()
	if s.override != nil {
		coord, label := *s.override, s.label
		s.mu.Unlock()
		return coord, label
	}
	s.mu.Unlock()

	coord, label, err := s.loc.Current(ctx)
	if err != nil {
		// Providers are expected to be wrapped with Fallback; treat a bare
		// failure the same way and keep the zero coordinate out of results.
		s.log.Warn().Err(err).Msg("Location provider failed without fallback")
	}
	return coord, label
}

// UseAddress geocodes an address and pins the origin there. ErrNoResults
// passes through for the transient "not found" notice.
func (s *Service) UseAddress(ctx context.Context, address string) (string, error) {
	coord, label, err := s.geo.GeocodeAddress(ctx, address)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.override = &coord
	s.label = label
	s.mu.Unlock()
	s.log.Info().Str("address", label).Msg("Search origin pinned")
	return label, nil
}

// ClearPinnedOrigin goes back to the live location provider
func (s *Service) ClearPinnedOrigin() {
	s.mu.Lock()
	s.override = nil
	s.label = ""
	s.mu.Unlock()
}

// BroadSearch runs the wide-radius keyword search and returns the closest
// hits within the configured radius.
func (s *Service) BroadSearch(ctx context.Context, keyword string) Result {
	origin, _ := s.Origin(ctx)
	hits, err := s.broad.NearbySearch(ctx, keyword, origin, s.cfg.BroadRadiusM)
	if err != nil {
		return Result{State: StateFailed, Err: err}
	}
	ranked := Ranker{MaxDistanceM: s.cfg.BroadRadiusM, Limit: s.cfg.BroadLimit}.Rank(origin, hits)
	if len(ranked) == 0 {
		return Result{State: StateEmpty}
	}
	return Result{State: StateResults, Places: ranked}
}

// CategorySearch runs the tight-radius keyword search used by the category
// shortcut buttons.
func (s *Service) CategorySearch(ctx context.Context, keyword string) Result {
	origin, _ := s.Origin(ctx)
	hits, err := s.category.SearchKeyword(ctx, keyword, origin, s.cfg.QueryRadiusM, s.cfg.CategorySize)
	if err != nil {
		return Result{State: StateFailed, Err: err}
	}
	ranked := Ranker{MaxDistanceM: s.cfg.CategoryCutM}.Rank(origin, hits)
	if len(ranked) == 0 {
		return Result{State: StateEmpty}
	}
	return Result{State: StateResults, Places: ranked}
}
