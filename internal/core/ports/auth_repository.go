package ports

import (
	"context"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetActive returns domain.ErrUserNotFound when id does not exist.
	SetActive(ctx context.Context, id int64, active bool) error
}

// AdminRepository defines persistence operations for administrator accounts.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
