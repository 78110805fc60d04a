package auth

import (
	"context"

	"github.com/dangerclosesec/ukmhub/internal/model"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID int64
	Role   model.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// CanAccessUser reports whether the caller may read data owned by userID.
func (i Identity) CanAccessUser(userID int64) bool {
	return i.IsAdmin() || i.UserID == userID
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity attached by the auth middleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
