package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/mindplayhq/mindplay-server/internal/auth/jwt"
	httperrors "github.com/mindplayhq/mindplay-server/pkg/http/errors"
)

type contextKey struct{}

var claimsKey contextKey

// ClaimsFrom extracts validated token claims from a request context,
// nil when the request was not authenticated.
func ClaimsFrom(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// WithClaims attaches claims to a context, used by middleware and tests.
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Middleware validates the bearer token and injects claims into the
// request context.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeUnauthorized, "missing bearer token")
			return
		}

		claims, err := s.Validate(token)
		if err != nil {
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}
