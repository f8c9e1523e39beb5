package devserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cheonTH/singlelife/internal/models"
)

// handleListComments handles GET /api/comments/{postID}. The list is flat
// and sorted by id; threading happens client-side.
func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postID")
	if !ok {
		respondError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	out := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.BoardID == postID {
			out = append(out, *c)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	respondJSON(w, out, http.StatusOK)
}

// handleCreateComment handles POST /api/comments. ParentID must point at a
// top-level comment on the same post; one level of nesting only.
func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BoardID  int64  `json:"boardId"`
		Content  string `json:"content"`
		ParentID *int64 `json:"parentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		respondError(w, "content is required", http.StatusBadRequest)
		return
	}

	viewer := viewerID(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.posts[req.BoardID]; !exists {
		respondError(w, "post not found", http.StatusNotFound)
		return
	}
	if req.ParentID != nil {
		parent, exists := s.comments[*req.ParentID]
		if !exists || parent.BoardID != req.BoardID {
			respondError(w, "parent comment not found", http.StatusNotFound)
			return
		}
		if parent.ParentID != nil {
			// Replies attach to the top-level comment, never to a reply.
			req.ParentID = parent.ParentID
		}
	}

	u := s.users[viewer]
	s.nextCmt++
	c := &models.Comment{
		ID:       s.nextCmt,
		BoardID:  req.BoardID,
		ParentID: req.ParentID,
		Content:  req.Content,
		Time:     time.Now(),
	}
	if u != nil {
		c.NickName = u.NickName
		c.Email = u.Email
	}
	s.comments[c.ID] = c

	log.Info().Int64("comment_id", c.ID).Int64("post_id", c.BoardID).Msg("Comment created")
	respondJSON(w, *c, http.StatusCreated)
}

// handleUpdateComment handles PUT /api/comments/{id}
func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, "invalid comment id", http.StatusBadRequest)
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		respondError(w, "content is required", http.StatusBadRequest)
		return
	}

	viewer := viewerID(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()
	c, exists := s.comments[id]
	if !exists {
		respondError(w, "comment not found", http.StatusNotFound)
		return
	}
	u := s.users[viewer]
	if u == nil || c.Email != u.Email {
		respondError(w, "not the author", http.StatusForbidden)
		return
	}
	c.Content = req.Content
	respondJSON(w, *c, http.StatusOK)
}

// handleDeleteComment handles DELETE /api/comments/{id}. Deleting a
// top-level comment takes its replies with it.
func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	viewer := viewerID(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()
	c, exists := s.comments[id]
	if !exists {
		respondError(w, "comment not found", http.StatusNotFound)
		return
	}
	u := s.users[viewer]
	if u == nil || c.Email != u.Email {
		respondError(w, "not the author", http.StatusForbidden)
		return
	}
	delete(s.comments, id)
	for rid, reply := range s.comments {
		if reply.ParentID != nil && *reply.ParentID == id {
			delete(s.comments, rid)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
