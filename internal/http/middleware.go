package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/service"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/httpx"
)

type contextKey struct{ name string }

var userContextKey = contextKey{"user"}

// UserFromContext returns the authenticated user placed by Authenticate.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userContextKey).(domain.User)
	return u, ok
}

// Authenticate resolves the bearer access token to a user and stores it in
// the request context. Requests without a valid token for an active account
// never reach the wrapped handler.
func Authenticate(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := httpx.BearerToken(r)
			if token == "" {
				errInvalidToken.write(w)
				return
			}

			u, err := auth.ResolveAccessToken(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrInactiveAccount):
					errInactiveAccount.write(w)
				case errors.Is(err, service.ErrInvalidAccess):
					errInvalidToken.write(w)
				default:
					errServer.write(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), userContextKey, u),
			))
		})
	}
}

// RequireRole rejects authenticated users whose role is not in the allow
// list. It must run inside Authenticate.
func RequireRole(roles ...domain.Role) httpx.Middleware {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				errInvalidToken.write(w)
				return
			}
			if _, ok := allowed[u.Role]; !ok {
				errInsufficientRole.write(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
