package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

// AuthService implements registration, login, and session verification.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenCodec
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenCodec,
	throttle ports.LoginThrottle,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		logger:   logger,
	}
}

// Register creates an account and returns it with a fresh session token.
// The duplicate-email pre-check gives the common case a friendly path; the
// race it leaves open is closed by the repository mapping the datastore's
// unique-constraint violation to domain.ErrEmailTaken on Create.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user, err := s.repo.Create(ctx, &domain.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, token, nil
}

// Login checks credentials and issues a session token. Unknown email and
// wrong password both surface as domain.ErrInvalidCredentials so the response
// cannot be used for account enumeration. Failed attempts feed the throttle;
// throttle backend errors are logged and ignored so logins fail open.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	allowed, err := s.throttle.Allow(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login throttle unavailable")
	} else if !allowed {
		return nil, "", domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle reset failed")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// Verify resolves a session token to its account. Any token failure or a user
// id that no longer exists yields domain.ErrInvalidToken.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}
