package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	// maxLimit caps a single page so one request cannot drag the whole table.
	maxLimit = 100
)

// UserService implements CRUD over user records.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// List returns one page of users ordered by id. Non-positive page and limit
// fall back to 1 and 10; limit is clamped to maxLimit.
func (s *UserService) List(ctx context.Context, page, limit int) ([]domain.User, error) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.repo.List(ctx, (page-1)*limit, limit)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the optional fields in input to the record. A password
// change requires both LastPassword and NewPassword, and LastPassword must
// match the stored hash. The literal password fields are consumed here; only
// the new hash reaches the repository.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if input.NewPassword != nil && input.LastPassword == nil {
		return nil, domain.ErrLastPasswordRequired
	}
	if input.LastPassword != nil && input.NewPassword == nil {
		return nil, domain.ErrNewPasswordRequired
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.LastPassword != nil {
		if !s.hasher.Verify(*input.LastPassword, user.PasswordHash) {
			return nil, domain.ErrIncorrectPassword
		}
		hash, err := s.hasher.Hash(*input.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
