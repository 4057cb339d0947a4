// Package middleware provides the HTTP authorization guard and request
// instrumentation for the Pressroom server.
package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"

	"github.com/pressroom/pressroom/pkg/identity"
	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server/store"
)

var bearerRegex = regexp.MustCompile(`^Bearer\s+(\S+)$`)

// TokenVerifier verifies a session token string and returns the account id
// and role it carries.
type TokenVerifier interface {
	Verify(tokenString string) (int64, model.Role, error)
}

// OwnerResolver resolves the owning account of the resource addressed by a
// request.
type OwnerResolver func(r *http.Request) (int64, error)

// Guard authenticates requests and enforces role and ownership rules. The
// gates are composable per route: Authenticate establishes the identity,
// RequireRole and RequireOwner refine it.
type Guard struct {
	verifier TokenVerifier
}

// NewGuard creates a Guard backed by the given token verifier.
func NewGuard(verifier TokenVerifier) *Guard {
	return &Guard{verifier: verifier}
}

// Authenticate validates the bearer token and stores the verified identity
// in the request context. Requests without a valid token are rejected with
// 401.
func (g *Guard) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respond(w, http.StatusUnauthorized, "Missing Authorization Header")
			return
		}

		matches := bearerRegex.FindStringSubmatch(authHeader)
		if len(matches) != 2 {
			respond(w, http.StatusUnauthorized, "Malformed Authorization Header")
			return
		}

		accountID, role, err := g.verifier.Verify(matches[1])
		if err != nil {
			respond(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := identity.Set(r.Context(), &identity.Identity{
			AccountID: accountID,
			Role:      role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects authenticated requests whose identity doesn't hold
// the given role. The denial message is route-specific.
func (g *Guard) RequireRole(role model.Role, msg string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := identity.Get(r.Context())
			if !ok {
				respond(w, http.StatusUnauthorized, "Missing Authorization Header")
				return
			}
			if id.Role != role {
				respond(w, http.StatusForbidden, msg)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireOwner rejects authenticated requests whose identity doesn't own
// the addressed resource. A resource the resolver can't find yields 404.
func (g *Guard) RequireOwner(resolve OwnerResolver, msg string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := identity.Get(r.Context())
			if !ok {
				respond(w, http.StatusUnauthorized, "Missing Authorization Header")
				return
			}

			ownerID, err := resolve(r)
			if err != nil {
				if errors.Is(err, store.ErrArticleNotFound) {
					respond(w, http.StatusNotFound, "Article not found")
					return
				}
				respond(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if id.AccountID != ownerID {
				respond(w, http.StatusForbidden, msg)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func respond(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
