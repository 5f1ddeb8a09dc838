package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/store"
	"github.com/gillani-market/shoprent/internal/utils"
	"github.com/gillani-market/shoprent/models"
)

// authenticate resolves the bearer token from the Authorization header into a
// full user record and stores it in the request context. Requests without a
// valid token of an active account never reach the wrapped handler.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			h.writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(header)
		if err != nil {
			h.writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		user, err := h.services.AuthService.Identity(r.Context(), tokenString)
		if err != nil {
			// A valid token whose subject has since been deleted is an
			// authentication failure, not a missing resource.
			if errors.Is(err, store.ErrUserNotFound) {
				err = ErrIdentityNotFound
			}
			h.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ActingUserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole admits only requests whose authenticated user carries one of the
// given roles. It must run after authenticate.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetActingUserFromContext(r.Context())
			if !ok {
				h.writeError(w, r, ErrEmptyAuthorizationHeader)
				return
			}
			if !slices.Contains(roles, user.Role) {
				logger.FromRequest(r).Debug().
					Str("user_id", user.ID).
					Str("role", string(user.Role)).
					Msg("role not allowed for route")
				h.writeError(w, r, fmt.Errorf("user role '%s' %w", user.Role, ErrRoleNotAllowed))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
