package devserver

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/cheonTH/singlelife/internal/models"
)

// handleListReviews handles GET /api/reviews/{placeID}
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "placeID")
	if placeID == "" {
		respondError(w, "place id is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	out := make([]models.Review, 0)
	for _, rev := range s.reviews {
		if rev.PlaceID == placeID {
			out = append(out, *rev)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	respondJSON(w, out, http.StatusOK)
}

// handleCreateReview handles POST /api/reviews. A user gets exactly one
// review per place; a second attempt is a conflict.
func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlaceID   string `json:"placeId"`
		PlaceName string `json:"placeName"`
		Review    string `json:"review"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.PlaceID == "" || req.Review == "" {
		respondError(w, "placeId and review are required", http.StatusBadRequest)
		return
	}

	viewer := viewerID(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rev := range s.reviews {
		if rev.PlaceID == req.PlaceID && rev.UserID == viewer {
			respondError(w, "review already exists for this place", http.StatusConflict)
			return
		}
	}

	u := s.users[viewer]
	s.nextRev++
	rev := &models.Review{
		ID:        s.nextRev,
		PlaceID:   req.PlaceID,
		PlaceName: req.PlaceName,
		Review:    req.Review,
		UserID:    viewer,
	}
	if u != nil {
		rev.NickName = u.NickName
	}
	s.reviews[rev.ID] = rev

	log.Info().Int64("review_id", rev.ID).Str("place_id", rev.PlaceID).Msg("Review created")
	respondJSON(w, *rev, http.StatusCreated)
}

// handleDeleteReview handles DELETE /api/reviews/{id}
func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, "invalid review id", http.StatusBadRequest)
		return
	}

	viewer := viewerID(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()
	rev, exists := s.reviews[id]
	if !exists {
		respondError(w, "review not found", http.StatusNotFound)
		return
	}
	if rev.UserID != viewer {
		respondError(w, "not the author", http.StatusForbidden)
		return
	}
	delete(s.reviews, id)
	w.WriteHeader(http.StatusNoContent)
}
