package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ualcz/exame-backend-dtlabs-2025/internal/httpx"
)

type userKey struct{}

// RequireUser returns middleware that resolves the bearer token into a user
// and stores it in the request context. Missing, malformed, expired, and
// unknown-subject tokens all produce the same 401 so callers learn nothing
// about which check failed. Disabled accounts are rejected after resolution.
func RequireUser(store *Store, issuer *Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := httpx.BearerToken(r)
			if token == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			username, err := issuer.Resolve(token)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			user, err := store.GetByUsername(r.Context(), username)
			if errors.Is(err, ErrNotFound) {
				httpx.WriteError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}
			if err != nil {
				slog.Error("resolve current user", "username", username, "error", err)
				httpx.WriteError(w, http.StatusInternalServerError, "failed to resolve user")
				return
			}

			if user.Disabled {
				httpx.WriteError(w, http.StatusBadRequest, "Inactive user")
				return
			}

			ctx := context.WithValue(r.Context(), userKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the user stored in the context by RequireUser.
func UserFrom(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(userKey{}).(*User)
	return u, ok
}
