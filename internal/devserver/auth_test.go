package devserver

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cheonTH/singlelife/internal/config"
)

func testServer() *Server {
	return New(config.DevServerConfig{JWTSecret: "test-secret"})
}

func TestJWTRoundTrip(t *testing.T) {
	s := testServer()

	token, err := s.generateJWT("danbi01")
	if err != nil {
		t.Fatalf("generateJWT: %v", err)
	}

	userID, err := s.validateJWT(token)
	if err != nil {
		t.Fatalf("validateJWT: %v", err)
	}
	if userID != "danbi01" {
		t.Fatalf("user id = %q, want danbi01", userID)
	}
}

func TestValidateJWTRejections(t *testing.T) {
	s := testServer()

	otherSecret := New(config.DevServerConfig{JWTSecret: "other-secret"})
	foreign, err := otherSecret.generateJWT("danbi01")
	if err != nil {
		t.Fatalf("generateJWT: %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "danbi01",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	expiredString, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noUserString, err := noUser.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token without user: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
		{"wrong secret", foreign},
		{"expired", expiredString},
		{"missing user_id claim", noUserString},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := s.validateJWT(c.token); err == nil {
				t.Fatal("expected validation to fail")
			}
		})
	}
}
