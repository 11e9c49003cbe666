package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AuthUser is the authenticated caller as asserted by the identity provider
type AuthUser struct {
	UserID string
	Email  string
	Name   string
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type contextKey string

const userContextKey contextKey = "authUser"

func parseSessionToken(tokenStr string) (*sessionClaims, error) {
	secret := []byte(os.Getenv("SESSION_JWT_SECRET"))
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer session token and
// stores the caller's identity in the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w)
			return
		}

		claims, err := parseSessionToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil || claims.Subject == "" {
			unauthorized(w)
			return
		}

		user := &AuthUser{
			UserID: claims.Subject,
			Email:  claims.Email,
			Name:   claims.Name,
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated caller set by RequireAuth
func UserFromContext(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(userContextKey).(*AuthUser)
	return user, ok
}

// WithUser returns a context carrying the given caller; used by tests
func WithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
