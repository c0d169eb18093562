package middleware

import (
	"context"
	"io"
	"net/http"
	"strings"

	"shipping-service/internal/domain"
	"shipping-service/internal/logx"
	"shipping-service/internal/service/user"
)

type ctxKey int

const claimsKey ctxKey = 0

type tokenVerifier interface {
	VerifyToken(token string) (*user.Claims, error)
}

// Auth validates the Bearer token and stores its claims in the request
// context. Requests without a valid token get a 401.
func Auth(logger logx.Logger, verifier tokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Debug("token rejected",
					logx.String("path", r.URL.Path),
					logx.Any("err", err),
				)
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the role carried in the token claims.
// It must run after Auth.
func RequireRole(role domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}
			if claims.Role != string(role) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = io.WriteString(w, `{"error":"forbidden"}`)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext returns the claims stored by Auth, if any.
func ClaimsFromContext(ctx context.Context) (*user.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*user.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(h[len(prefix):]), true
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = io.WriteString(w, `{"error":"`+msg+`"}`)
}
