package user

import (
	"context"
)

// UserService defines business logic for identity management. All
// operations except GetUser are manager-only; the handler layer enforces
// that before calling in.
type UserService interface {
	// CreateUser registers a new account, generating the username and
	// hashing the password when they are supplied.
	CreateUser(ctx context.Context, req CreateUserRequest) (PublicUser, error)

	// GetUser retrieves a single account by id.
	GetUser(ctx context.Context, id string) (PublicUser, error)

	// ListUsers lists every account, ordered by name.
	ListUsers(ctx context.Context) ([]PublicUser, error)

	// UpdateUser applies a partial update. Fields left nil are untouched.
	UpdateUser(ctx context.Context, req UpdateUserRequest) (PublicUser, error)

	// DeleteUser removes an account. Deleting yourself or the last
	// remaining manager is refused.
	DeleteUser(ctx context.Context, actorID string, id string) error
}
