// Package identity carries the authenticated caller through a request.
//
// The auth middleware is the only writer. Handlers read the identity once and
// pass it by value to services, which scope every store query by UserID.
package identity

import (
	"context"
	"tasknest/shared/failure"
)

type contextKey struct{}

// Identity is the caller resolved from a verified token.
type Identity struct {
	UserID  string
	TokenID string
}

// IsZero reports whether no user is attached.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	if !ok || id.IsZero() {
		return Identity{}, false
	}

	return id, true
}

// Require returns the caller identity or the missing token failure.
func Require(ctx context.Context) (Identity, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return Identity{}, failure.MissingTokenError
	}

	return id, nil
}
