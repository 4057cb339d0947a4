// Package identity carries the authenticated caller through the request
// context. It is populated by the authorization guard after token
// verification and read by handlers and role/ownership gates.
package identity

import (
	"context"

	"github.com/pressroom/pressroom/pkg/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Key is the context key for Identity.
const Key ContextKey = "identity"

// Identity represents the authenticated identity for a request, as claimed
// by a verified session token.
type Identity struct {
	AccountID int64
	Role      model.Role
}

// IsAdmin reports whether the identity holds the administrator role.
func (i *Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// IsReporter reports whether the identity holds the reporter role.
func (i *Identity) IsReporter() bool {
	return i.Role == model.RoleReporter
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
