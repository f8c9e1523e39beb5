package places

import (
	"sort"

	"github.com/cheonTH/singlelife/internal/models"
)

// Ranker orders search hits by proximity to the origin. MaxDistanceM drops
// anything farther away; Limit caps the result count, zero meaning no cap.
type Ranker struct {
	MaxDistanceM float64
	Limit        int
}

// Rank computes the distance from origin for every place, drops those
// beyond MaxDistanceM, sorts the rest ascending by distance and applies the
// limit. The input slice is not modified.
func (r Ranker) Rank(origin Coordinate, in []models.Place) []models.Place {
	out := make([]models.Place, 0, len(in))
	for _, p := range in {
		d := Distance(origin, Coordinate{Lat: p.Lat, Lng: p.Lng})
		if r.MaxDistanceM > 0 && d > r.MaxDistanceM {
			continue
		}
		p.DistanceM = d
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceM < out[j].DistanceM
	})

	if r.Limit > 0 && len(out) > r.Limit {
		out = out[:r.Limit]
	}
	return out
}
