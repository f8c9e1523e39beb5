package devserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/cheonTH/singlelife/internal/models"
)

// render produces the wire form of a post for a particular viewer. Must be
// called with s.mu held.
func (s *Server) render(p *post, viewer string) models.Post {
	commentCount := 0
	for _, c := range s.comments {
		if c.BoardID == p.ID {
			commentCount++
		}
	}
	return models.Post{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		Category:     p.Category,
		NickName:     p.NickName,
		UserID:       p.UserID,
		Email:        p.Email,
		WritingTime:  p.WritingTime,
		LikeCount:    len(s.likes[p.ID]),
		IsLiked:      viewer != "" && s.likes[p.ID][viewer],
		CommentCount: commentCount,
		IsSaved:      viewer != "" && s.saves[p.ID][viewer],
		ImageURLs:    p.ImageURLs,
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

// handleListPosts handles GET /api/board
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	viewer := s.optionalViewer(r)

	s.mu.Lock()
	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, s.render(p, viewer))
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	respondJSON(w, out, http.StatusOK)
}

// handleGetPost handles GET /api/board/{id}
func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, "invalid post id", http.StatusBadRequest)
		return
	}
	viewer := s.optionalViewer(r)

	s.mu.Lock()
	p, exists := s.posts[id]
	if !exists {
		s.mu.Unlock()
		respondError(w, "post not found", http.StatusNotFound)
		return
	}
	out := s.render(p, viewer)
	s.mu.Unlock()

	respondJSON(w, out, http.StatusOK)
}

// postRequest is the create/update payload
type postRequest struct {
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Category    models.Category `json:"category"`
	NickName    string          `json:"nickName"`
	WritingTime time.Time       `json:"writingTime"`
	ImageURLs   []string        `json:"imageUrls"`
}

// handleCreatePost handles POST /api/board
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Content == "" || !req.Category.Valid() {
		respondError(w, "title, content and category are required", http.StatusBadRequest)
		return
	}

	viewer := viewerID(r.Context())

	s.mu.Lock()
	u := s.users[viewer]
	s.nextPost++
	p := &post{
		ID:          s.nextPost,
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		UserID:      viewer,
		WritingTime: req.WritingTime,
		ImageURLs:   req.ImageURLs,
	}
	if p.WritingTime.IsZero() {
		p.WritingTime = time.Now()
	}
	if u != nil {
		p.NickName = u.NickName
		p.Email = u.Email
	} else if req.NickName != "" {
		p.NickName = req.NickName
	}
	s.posts[p.ID] = p
	out := s.render(p, viewer)
	s.mu.Unlock()

	log.Info().Int64("post_id", p.ID).Str("user_id", viewer).Msg("Post created")
	respondJSON(w, out, http.StatusCreated)
}

// handleUpdatePost handles PUT /api/board/{id}
func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, "invalid post id", http.StatusBadRequest)
		return
	}
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	viewer := viewerID(r.Context())

	s.mu.Lock()
	p, exists := s.posts[id]
	if !exists {
		s.mu.Unlock()
		respondError(w, "post not found", http.StatusNotFound)
		return
	}
	if p.UserID != viewer {
		s.mu.Unlock()
		respondError(w, "not the author", http.StatusForbidden)
		return
	}
	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Content != "" {
		p.Content = req.Content
	}
	if req.Category.Valid() {
		p.Category = req.Category
	}
	if req.ImageURLs != nil {
		p.ImageURLs = req.ImageURLs
	}
	out := s.render(p, viewer)
	s.mu.Unlock()

	respondJSON(w, out, http.StatusOK)
}

// handleDeletePost handles DELETE /api/board/{id}. Comments, likes and
// saves hanging off the post go with it.
func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, "invalid post id", http.StatusBadRequest)
		return
	}
	viewer := viewerID(r.Context())

	s.mu.Lock()
	p, exists := s.posts[id]
	if !exists {
		s.mu.Unlock()
		respondError(w, "post not found", http.StatusNotFound)
		return
	}
	if p.UserID != viewer {
		s.mu.Unlock()
		respondError(w, "not the author", http.StatusForbidden)
		return
	}
	delete(s.posts, id)
	delete(s.likes, id)
	delete(s.saves, id)
	for cid, c := range s.comments {
		if c.BoardID == id {
			delete(s.comments, cid)
		}
	}
	s.mu.Unlock()

	log.Info().Int64("post_id", id).Str("user_id", viewer).Msg("Post deleted")
	w.WriteHeader(http.StatusNoContent)
}

// handleToggleLike handles POST /api/board/{id}/like
func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, "invalid post id", http.StatusBadRequest)
		return
	}
	viewer := viewerID(r.Context())

	s.mu.Lock()
	if _, exists := s.posts[id]; !exists {
		s.mu.Unlock()
		respondError(w, "post not found", http.StatusNotFound)
		return
	}
	if s.likes[id] == nil {
		s.likes[id] = make(map[string]bool)
	}
	liked := !s.likes[id][viewer]
	if liked {
		s.likes[id][viewer] = true
	} else {
		delete(s.likes[id], viewer)
	}
	count := len(s.likes[id])
	s.mu.Unlock()

	respondJSON(w, models.LikeResponse{Liked: liked, LikeCount: count}, http.StatusOK)
}

// handleToggleSave handles POST /api/board/{id}/save
func (s *Server) handleToggleSave(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, "invalid post id", http.StatusBadRequest)
		return
	}
	viewer := viewerID(r.Context())

	s.mu.Lock()
	if _, exists := s.posts[id]; !exists {
		s.mu.Unlock()
		respondError(w, "post not found", http.StatusNotFound)
		return
	}
	if s.saves[id] == nil {
		s.saves[id] = make(map[string]bool)
	}
	saved := !s.saves[id][viewer]
	if saved {
		s.saves[id][viewer] = true
	} else {
		delete(s.saves[id], viewer)
	}
	s.mu.Unlock()

	respondJSON(w, models.SaveResponse{Saved: saved}, http.StatusOK)
}
