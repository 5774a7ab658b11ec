package user

import (
	"context"
)

// UserRepository defines data access for local user accounts.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create fails with ErrUsernameExists or ErrEmailExists on duplicates.
	Create(ctx context.Context, newUser User) (User, error)

	Count(ctx context.Context) (int64, error)
}
