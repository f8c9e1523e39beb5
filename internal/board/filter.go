package board

import (
	"sort"
	"strings"

	"github.com/cheonTH/singlelife/internal/models"
)

// FilterSort derives the visible list from the full collection, a category
// and a free-text search term. It is pure: the input slice is never
// mutated and identical inputs always yield identical output.
//
// Category "all" keeps everything. A non-empty, trimmed term keeps posts
// whose title or content contains it case-insensitively. The survivors are
// sorted newest first; the sort is stable so equal timestamps keep their
// incoming order.
func FilterSort(posts []models.Post, category models.Category, term string) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if category != models.CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	if t := strings.TrimSpace(term); t != "" {
		needle := strings.ToLower(t)
		filtered := out[:0]
		for _, p := range out {
			if strings.Contains(strings.ToLower(p.Title), needle) ||
				strings.Contains(strings.ToLower(p.Content), needle) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WritingTime.After(out[j].WritingTime)
	})
	return out
}
