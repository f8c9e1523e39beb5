package devserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const viewerKey contextKey = "viewer_user_id"

const tokenTTL = 24 * time.Hour

// generateJWT issues an HS256 token carrying the login id
func (s *Server) generateJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// validateJWT validates a token and returns the login id it carries
func (s *Server) validateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("user_id not found in token")
	}
	return userID, nil
}

// authMiddleware rejects requests without a valid bearer token
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respondError(w, "Authorization header required", http.StatusUnauthorized)
			return
		}
		userID, err := s.validateJWT(token)
		if err != nil {
			respondError(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), viewerKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// viewerID extracts the authenticated login id from the context
func viewerID(ctx context.Context) string {
	userID, ok := ctx.Value(viewerKey).(string)
	if !ok {
		return ""
	}
	return userID
}

// optionalViewer resolves the viewer on public routes when a valid token
// happens to be present; otherwise the viewer is anonymous.
func (s *Server) optionalViewer(r *http.Request) string {
	token, ok := bearerToken(r)
	if !ok {
		return ""
	}
	userID, err := s.validateJWT(token)
	if err != nil {
		return ""
	}
	return userID
}
