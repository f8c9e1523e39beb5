package board

import (
	"sort"

	"github.com/cheonTH/singlelife/internal/models"
)

// Thread turns the flat comment list into display order: each top-level
// comment followed by its replies, both ascending by id. The backend only
// produces one level of nesting; should a reply ever point at another
// reply, it is flattened under the nearest top-level ancestor.
func Thread(comments []models.Comment) []models.Comment {
	sorted := make([]models.Comment, len(comments))
	copy(sorted, comments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int64]models.Comment, len(sorted))
	for _, c := range sorted {
		byID[c.ID] = c
	}

	out := make([]models.Comment, 0, len(sorted))
	for _, parent := range sorted {
		if parent.ParentID != nil {
			continue
		}
		out = append(out, parent)
		for _, reply := range sorted {
			if reply.ParentID != nil && topAncestor(byID, reply) == parent.ID {
				out = append(out, reply)
			}
		}
	}
	return out
}

// topAncestor walks parent references up to the first comment that has
// none. A dangling or cyclic reference stops at the last resolvable link.
func topAncestor(byID map[int64]models.Comment, c models.Comment) int64 {
	seen := make(map[int64]bool)
	cur := c
	for cur.ParentID != nil && !seen[cur.ID] {
		seen[cur.ID] = true
		parent, ok := byID[*cur.ParentID]
		if !ok {
			return *cur.ParentID
		}
		cur = parent
	}
	return cur.ID
}
