package devserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/cheonTH/singlelife/internal/config"
	"github.com/cheonTH/singlelife/internal/models"
)

// Server is the in-memory development backend. It exposes the same REST
// surface the mobile client consumes so the client and its tests can run
// without the real deployment. Nothing survives a restart by design.
type Server struct {
	cfg config.DevServerConfig

	mu        sync.Mutex
	users     map[string]*user // keyed by login id
	posts     map[int64]*post
	comments  map[int64]*models.Comment
	reviews   map[int64]*models.Review
	likes     map[int64]map[string]bool // post id -> liker user ids
	saves     map[int64]map[string]bool
	nextUser  int64
	nextPost  int64
	nextCmt   int64
	nextRev   int64
	emailCode map[string]string // email -> last issued code
}

// New creates an empty development backend
func New(cfg config.DevServerConfig) *Server {
	return &Server{
		cfg:       cfg,
		users:     make(map[string]*user),
		posts:     make(map[int64]*post),
		comments:  make(map[int64]*models.Comment),
		reviews:   make(map[int64]*models.Review),
		likes:     make(map[int64]map[string]bool),
		saves:     make(map[int64]map[string]bool),
		emailCode: make(map[string]string),
	}
}

// post is the stored form of a board post; viewer-specific flags are
// computed per request.
type post struct {
	ID          int64
	Title       string
	Content     string
	Category    models.Category
	NickName    string
	UserID      string
	Email       string
	WritingTime time.Time
	ImageURLs   []string
}

// Router builds the chi router with the full API surface
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		// Public routes; the viewer is picked up from the bearer token when
		// one is present.
		r.Get("/board", s.handleListPosts)
		r.Get("/board/{id}", s.handleGetPost)
		r.Get("/comments/{postID}", s.handleListComments)
		r.Get("/reviews/{placeID}", s.handleListReviews)
		r.Post("/users/login", s.handleLogin)
		r.Post("/users/signup", s.handleSignup)
		r.Get("/users/check-userId", s.handleCheckUserID)
		r.Get("/users/check-nickname", s.handleCheckNickname)
		r.Post("/users/send-verification-code", s.handleSendVerificationCode)
		r.Post("/users/find-userId", s.handleFindUserID)
		r.Post("/users/reset-password", s.handleResetPassword)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Post("/board", s.handleCreatePost)
			r.Put("/board/{id}", s.handleUpdatePost)
			r.Delete("/board/{id}", s.handleDeletePost)
			r.Post("/board/{id}/like", s.handleToggleLike)
			r.Post("/board/{id}/save", s.handleToggleSave)
			r.Post("/comments", s.handleCreateComment)
			r.Put("/comments/{id}", s.handleUpdateComment)
			r.Delete("/comments/{id}", s.handleDeleteComment)
			r.Post("/reviews", s.handleCreateReview)
			r.Delete("/reviews/{id}", s.handleDeleteReview)
			r.Get("/users/me", s.handleMe)
			r.Put("/users/update-profile", s.handleUpdateProfile)
			r.Post("/users/check-password", s.handleCheckPassword)
		})
	})

	return r
}

// Run serves the development backend until interrupted
func Run(cfg *config.Config) {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.DevServer.Host, cfg.DevServer.Port),
		Handler:      New(cfg.DevServer).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("host", cfg.DevServer.Host).
			Int("port", cfg.DevServer.Port).
			Msg("Starting dev backend")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Dev backend failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down dev backend")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Dev backend forced to shutdown")
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("took", time.Since(start)).
			Msg("Request handled")
	})
}

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, v interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// bearerToken pulls the token out of the Authorization header
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
