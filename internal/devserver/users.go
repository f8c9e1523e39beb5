package devserver

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/cheonTH/singlelife/internal/models"
)

const (
	codeLength = 6
	codeChars  = "0123456789"
)

// user is the stored form of an account
type user struct {
	PK           int64
	UserID       string
	Name         string
	NickName     string
	Email        string
	PasswordHash []byte
}

func (u *user) profile() models.UserProfile {
	return models.UserProfile{
		ID:       u.PK,
		UserID:   u.UserID,
		Name:     u.Name,
		NickName: u.NickName,
		Email:    u.Email,
	}
}

// handleSignup handles POST /api/users/signup
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.Password == "" || req.NickName == "" || req.Email == "" {
		respondError(w, "userId, password, nickName and email are required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.UserID]; exists {
		respondError(w, "user id already taken", http.StatusConflict)
		return
	}
	for _, u := range s.users {
		if u.NickName == req.NickName {
			respondError(w, "nickname already taken", http.StatusConflict)
			return
		}
	}

	s.nextUser++
	u := &user{
		PK:           s.nextUser,
		UserID:       req.UserID,
		Name:         req.Name,
		NickName:     req.NickName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	s.users[req.UserID] = u

	log.Info().Str("user_id", u.UserID).Msg("User signed up")
	respondJSON(w, u.profile(), http.StatusCreated)
}

// handleLogin handles POST /api/users/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	u, ok := s.users[req.UserID]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		respondError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := s.generateJWT(u.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to issue token")
		respondError(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	respondJSON(w, models.LoginResponse{
		Token:    token,
		ID:       u.PK,
		UserID:   u.UserID,
		Name:     u.Name,
		NickName: u.NickName,
		Email:    u.Email,
	}, http.StatusOK)
}

// handleCheckUserID handles GET /api/users/check-userId
func (s *Server) handleCheckUserID(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, "userId is required", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	_, taken := s.users[userID]
	s.mu.Unlock()
	respondJSON(w, models.AvailabilityResponse{Available: !taken}, http.StatusOK)
}

// handleCheckNickname handles GET /api/users/check-nickname
func (s *Server) handleCheckNickname(w http.ResponseWriter, r *http.Request) {
	nickName := r.URL.Query().Get("nickName")
	if nickName == "" {
		respondError(w, "nickName is required", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	taken := false
	for _, u := range s.users {
		if u.NickName == nickName {
			taken = true
			break
		}
	}
	s.mu.Unlock()
	respondJSON(w, models.AvailabilityResponse{Available: !taken}, http.StatusOK)
}

// handleSendVerificationCode handles POST /api/users/send-verification-code.
// The development backend does not send mail; the code comes back in the
// response body just like the deployed backend's behavior.
func (s *Server) handleSendVerificationCode(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, "email is required", http.StatusBadRequest)
		return
	}
	code := generateCode()
	s.mu.Lock()
	s.emailCode[email] = code
	s.mu.Unlock()
	respondJSON(w, models.VerificationCodeResponse{Code: code}, http.StatusOK)
}

// generateCode generates a random 6-digit code
func generateCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(codeChars))))
		code[i] = codeChars[n.Int64()]
	}
	return string(code)
}

// handleMe handles GET /api/users/me
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u, ok := s.users[viewerID(r.Context())]
	s.mu.Unlock()
	if !ok {
		respondError(w, "user not found", http.StatusNotFound)
		return
	}
	respondJSON(w, u.profile(), http.StatusOK)
}

// handleUpdateProfile handles PUT /api/users/update-profile
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		NickName string `json:"nickName"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[viewerID(r.Context())]
	if !ok {
		respondError(w, "user not found", http.StatusNotFound)
		return
	}
	for _, other := range s.users {
		if other.UserID != u.UserID && other.NickName == req.NickName {
			respondError(w, "nickname already taken", http.StatusConflict)
			return
		}
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.NickName != "" {
		u.NickName = req.NickName
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	respondJSON(w, u.profile(), http.StatusOK)
}

// handleCheckPassword handles POST /api/users/check-password
func (s *Server) handleCheckPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	u, ok := s.users[viewerID(r.Context())]
	s.mu.Unlock()
	if !ok {
		respondError(w, "user not found", http.StatusNotFound)
		return
	}
	valid := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) == nil
	respondJSON(w, struct {
		Valid bool `json:"valid"`
	}{Valid: valid}, http.StatusOK)
}

// handleFindUserID handles POST /api/users/find-userId
func (s *Server) handleFindUserID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Name == req.Name && u.Email == req.Email {
			respondJSON(w, struct {
				UserID string `json:"userId"`
			}{UserID: u.UserID}, http.StatusOK)
			return
		}
	}
	respondError(w, "no matching account", http.StatusNotFound)
}

// handleResetPassword handles POST /api/users/reset-password
func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string `json:"userId"`
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.NewPassword == "" {
		respondError(w, "newPassword is required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, "Failed to reset password", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[req.UserID]
	if !ok || u.Email != req.Email {
		respondError(w, "no matching account", http.StatusNotFound)
		return
	}
	u.PasswordHash = hash
	w.WriteHeader(http.StatusNoContent)
}
