package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Session holds the token and profile fields persisted across restarts,
// the app's device-local key-value storage.
type Session struct {
	Token    string `json:"token"`
	UserPK   int64  `json:"userPk"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	NickName string `json:"nickName"`
	Email    string `json:"email"`
}

// Store persists the session as a JSON file. All fields live and die
// together: login writes them all, logout wipes them all.
type Store struct {
	path string
	log  zerolog.Logger

	mu   sync.Mutex
	data Session
}

// NewStore creates a store backed by the given file and loads whatever
// session it holds. A missing file is simply a logged-out session.
func NewStore(path string, log zerolog.Logger) (*Store, error) {
	s := &Store{path: path, log: log}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt session file should not brick the app.
		s.log.Warn().Err(err).Str("path", s.path).Msg("Discarding unreadable session file")
		return nil
	}
	s.data = sess
	return nil
}

// Save persists a new session, replacing any previous one. The write goes
// through a temp file and rename so a crash never leaves a half-written
// session behind.
func (s *Store) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	s.data = sess
	return nil
}

// Clear wipes every persisted field and removes the file. Used on logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = Session{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Current returns a copy of the stored session
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Token implements the API client's TokenSource. An expired token counts
// as logged out.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.Token == "" {
		return "", false
	}
	if exp, ok := tokenExpiry(s.data.Token); ok && time.Now().After(exp) {
		return "", false
	}
	return s.data.Token, true
}

// LoggedIn reports whether a usable session is present
func (s *Store) LoggedIn() bool {
	_, ok := s.Token()
	return ok
}

// Identity yields the viewer's identity for client-side ownership checks
func (s *Store) Identity() (string, string, bool) {
	if !s.LoggedIn() {
		return "", "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.UserID, s.data.NickName, true
}

// tokenExpiry pulls the exp claim out of the token without verifying the
// signature; the backend remains the authority, this only avoids sending
// requests that are guaranteed to bounce.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
