package ports

import (
	"context"

	"github.com/userhub/users-api/internal/core/domain"
)

// UpdateUserInput carries the optional fields of a user update. Nil means
// "leave unchanged". LastPassword and NewPassword travel together: the service
// rejects one without the other, and neither is ever persisted as a literal
// field; NewPassword is hashed into the stored password hash.
type UpdateUserInput struct {
	Email        *string
	Username     *string
	LastPassword *string
	NewPassword  *string
}

// UserService defines the CRUD use-cases over user records.
type UserService interface {
	List(ctx context.Context, page, limit int) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
