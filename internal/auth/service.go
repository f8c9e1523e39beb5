package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cheonTH/singlelife/internal/api"
	"github.com/cheonTH/singlelife/internal/models"
	"github.com/cheonTH/singlelife/internal/session"
)

// ErrEmailNotVerified blocks signup until the emailed code has been
// entered and matched.
var ErrEmailNotVerified = errors.New("email not verified")

// Backend is the slice of the REST client the auth service needs
type Backend interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) error
	CheckUserID(ctx context.Context, userID string) (bool, error)
	CheckNickname(ctx context.Context, nickName string) (bool, error)
	SendVerificationCode(ctx context.Context, email string) (string, error)
	Me(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*models.UserProfile, error)
	CheckPassword(ctx context.Context, password string) (bool, error)
	FindUserID(ctx context.Context, name, email string) (string, error)
	ResetPassword(ctx context.Context, userID, email, newPassword string) error
}

// Service drives login, signup and profile flows and keeps the persisted
// session in step with them.
type Service struct {
	backend Backend
	store   *session.Store
	log     zerolog.Logger

	mu            sync.Mutex
	issuedCode    string
	emailVerified bool
}

// NewService creates an auth service
func NewService(backend Backend, store *session.Store, log zerolog.Logger) *Service {
	return &Service{backend: backend, store: store, log: log}
}

// Login exchanges credentials for a session and persists it. Empty fields
// fail validation before any request is sent.
func (s *Service) Login(ctx context.Context, userID, password string) (*models.LoginResponse, error) {
	errs := FieldErrors{}
	if userID == "" {
		errs["userId"] = "user id is required"
	}
	if password == "" {
		errs["password"] = "password is required"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	res, err := s.backend.Login(ctx, models.LoginRequest{UserID: userID, Password: password})
	if err != nil {
		return nil, err
	}

	sess := session.Session{
		Token:    res.Token,
		UserPK:   res.ID,
		UserID:   res.UserID,
		Name:     res.Name,
		NickName: res.NickName,
		Email:    res.Email,
	}
	if sess.UserID == "" {
		sess.UserID = userID
	}
	if err := s.store.Save(sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	s.log.Info().Str("user_id", sess.UserID).Msg("Logged in")
	return res, nil
}

// Logout clears every persisted session field
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.log.Info().Msg("Logged out")
	return nil
}

// CheckUserID reports whether a login id is available
func (s *Service) CheckUserID(ctx context.Context, userID string) (bool, error) {
	if err := ValidateUserID(userID); err != nil {
		return false, FieldErrors{"userId": err.Error()}
	}
	return s.backend.CheckUserID(ctx, userID)
}

// CheckNickname reports whether a nickname is available
func (s *Service) CheckNickname(ctx context.Context, nickName string) (bool, error) {
	if err := ValidateNickname(nickName); err != nil {
		return false, FieldErrors{"nickName": err.Error()}
	}
	return s.backend.CheckNickname(ctx, nickName)
}

// SendEmailCode asks the backend to mail a verification code and keeps the
// issued code for the client-side comparison.
func (s *Service) SendEmailCode(ctx context.Context, email string) error {
	if err := ValidateEmail(email); err != nil {
		return FieldErrors{"email": err.Error()}
	}
	code, err := s.backend.SendVerificationCode(ctx, email)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.issuedCode = code
	s.emailVerified = false
	s.mu.Unlock()
	return nil
}

// VerifyEmailCode compares the entered code against the issued one
func (s *Service) VerifyEmailCode(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.issuedCode == "" || code == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.issuedCode)) == 1 {
		s.emailVerified = true
	}
	return s.emailVerified
}

// Signup validates the full form, requires a verified email and registers
// the account.
func (s *Service) Signup(ctx context.Context, form SignupForm) error {
	if err := ValidateSignup(form); err != nil {
		return err
	}
	s.mu.Lock()
	verified := s.emailVerified
	s.mu.Unlock()
	if !verified {
		return ErrEmailNotVerified
	}

	err := s.backend.Signup(ctx, models.SignupRequest{
		Name:     form.Name,
		UserID:   form.UserID,
		Password: form.Password,
		NickName: form.NickName,
		Email:    form.Email,
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("user_id", form.UserID).Msg("Signed up")
	return nil
}

// Me fetches the profile and syncs the persisted fields with it
func (s *Service) Me(ctx context.Context) (*models.UserProfile, error) {
	profile, err := s.backend.Me(ctx)
	if err != nil {
		return nil, err
	}

	sess := s.store.Current()
	sess.Name = profile.Name
	sess.NickName = profile.NickName
	sess.Email = profile.Email
	if err := s.store.Save(sess); err != nil {
		s.log.Warn().Err(err).Msg("Failed to sync profile into session")
	}
	return profile, nil
}

// UpdateProfile edits profile fields after validating them
func (s *Service) UpdateProfile(ctx context.Context, name, nickName, email string) (*models.UserProfile, error) {
	errs := FieldErrors{}
	if err := ValidateName(name); err != nil {
		errs["name"] = err.Error()
	}
	if err := ValidateNickname(nickName); err != nil {
		errs["nickName"] = err.Error()
	}
	if err := ValidateEmail(email); err != nil {
		errs["email"] = err.Error()
	}
	if len(errs) > 0 {
		return nil, errs
	}

	profile, err := s.backend.UpdateProfile(ctx, api.UpdateProfileRequest{
		Name: name, NickName: nickName, Email: email,
	})
	if err != nil {
		return nil, err
	}

	sess := s.store.Current()
	sess.Name = profile.Name
	sess.NickName = profile.NickName
	sess.Email = profile.Email
	if err := s.store.Save(sess); err != nil {
		s.log.Warn().Err(err).Msg("Failed to sync profile into session")
	}
	return profile, nil
}

// CheckPassword verifies the current password before a sensitive change
func (s *Service) CheckPassword(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, FieldErrors{"password": "password is required"}
	}
	return s.backend.CheckPassword(ctx, password)
}

// FindUserID recovers a login id from name and email
func (s *Service) FindUserID(ctx context.Context, name, email string) (string, error) {
	errs := FieldErrors{}
	if err := ValidateName(name); err != nil {
		errs["name"] = err.Error()
	}
	if err := ValidateEmail(email); err != nil {
		errs["email"] = err.Error()
	}
	if len(errs) > 0 {
		return "", errs
	}
	return s.backend.FindUserID(ctx, name, email)
}

// ResetPassword sets a new password after validating it
func (s *Service) ResetPassword(ctx context.Context, userID, email, newPassword string) error {
	errs := FieldErrors{}
	if err := ValidateUserID(userID); err != nil {
		errs["userId"] = err.Error()
	}
	if err := ValidateEmail(email); err != nil {
		errs["email"] = err.Error()
	}
	if err := ValidatePassword(newPassword); err != nil {
		errs["newPassword"] = err.Error()
	}
	if len(errs) > 0 {
		return errs
	}
	return s.backend.ResetPassword(ctx, userID, email, newPassword)
}
