package ports

import (
	"context"

	"github.com/userhub/users-api/internal/core/domain"
)

// UserRepository defines the persistence operations for user records.
// Implementations return domain.ErrUserNotFound for missing rows and
// domain.ErrEmailTaken when the unique email constraint is violated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
