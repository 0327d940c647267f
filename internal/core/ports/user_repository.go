package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
)

type UserRepository interface {
	// Add persists a user. A duplicate email is reported as a validation error.
	Add(ctx context.Context, u *user.User) error

	// Get returns errs.ObjectNotFoundError when id does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
