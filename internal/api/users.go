package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cheonTH/singlelife/internal/models"
)

// Login exchanges credentials for a bearer token and profile
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var res models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", false, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Signup registers a new account
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/api/users/signup", false, req, nil)
}

// CheckUserID asks the backend whether a login id is still available
func (c *Client) CheckUserID(ctx context.Context, userID string) (bool, error) {
	var res models.AvailabilityResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/check-userId"+query("userId", userID), false, nil, &res); err != nil {
		return false, fmt.Errorf("failed to check user id: %w", err)
	}
	return res.Available, nil
}

// CheckNickname asks the backend whether a nickname is still available
func (c *Client) CheckNickname(ctx context.Context, nickName string) (bool, error) {
	var res models.AvailabilityResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/check-nickname"+query("nickName", nickName), false, nil, &res); err != nil {
		return false, fmt.Errorf("failed to check nickname: %w", err)
	}
	return res.Available, nil
}

// SendVerificationCode asks the backend to mail a verification code to the
// address and returns the issued code for client-side comparison.
func (c *Client) SendVerificationCode(ctx context.Context, email string) (string, error) {
	var res models.VerificationCodeResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/send-verification-code"+query("email", email), false, nil, &res); err != nil {
		return "", err
	}
	return res.Code, nil
}

// Me fetches the profile of the logged-in user
func (c *Client) Me(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/users/me", true, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfileRequest is the payload for editing profile fields
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	NickName string `json:"nickName"`
	Email    string `json:"email"`
}

// UpdateProfile edits the logged-in user's profile
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodPut, "/api/users/update-profile", true, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CheckPassword verifies the current password before a sensitive edit
func (c *Client) CheckPassword(ctx context.Context, password string) (bool, error) {
	body := struct {
		Password string `json:"password"`
	}{Password: password}
	var res struct {
		Valid bool `json:"valid"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users/check-password", true, body, &res); err != nil {
		return false, err
	}
	return res.Valid, nil
}

// FindUserID recovers a login id from name and email
func (c *Client) FindUserID(ctx context.Context, name, email string) (string, error) {
	body := struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{Name: name, Email: email}
	var res struct {
		UserID string `json:"userId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users/find-userId", false, body, &res); err != nil {
		return "", err
	}
	return res.UserID, nil
}

// ResetPassword sets a new password after identity verification
func (c *Client) ResetPassword(ctx context.Context, userID, email, newPassword string) error {
	body := struct {
		UserID      string `json:"userId"`
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}{UserID: userID, Email: email, NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, "/api/users/reset-password", false, body, nil)
}
