package users

import (
	"context"

	"github.com/hessin2010king/backend/internal/types"
)

type Repository interface {
	List(ctx context.Context) ([]*types.User, error)

	// GetByUsername returns nil (no error) when the username is unknown.
	GetByUsername(ctx context.Context, username string) (*types.User, error)
	// GetByCredentials matches the stored password column by exact equality.
	// Whether that column holds a hash or a plaintext value is the caller's
	// concern; nil is returned when nothing matches.
	GetByCredentials(ctx context.Context, username, password string) (*types.User, error)

	// Create fails on a duplicate username (unique constraint surfaced as-is).
	Create(ctx context.Context, user *types.User) (*types.User, error)
	// Update replaces the profile fields; username, password and role are
	// fixed at signup.
	Update(ctx context.Context, id int64, user *types.User) (*types.User, error)
	Delete(ctx context.Context, id int64) error
}
