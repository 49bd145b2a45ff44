package domain

import "errors"

var (
	// ErrEmailTaken is returned when a registration or email change collides
	// with an existing account. Backed by the unique constraint on users.email.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials covers both unknown email and wrong password so the
	// API never reveals which one failed.
	ErrInvalidCredentials = errors.New("email or password incorrect")

	// ErrInvalidToken covers every session token failure: bad signature,
	// expiry, malformed claims, or an embedded user id that no longer exists.
	ErrInvalidToken = errors.New("invalid session token")

	ErrUserNotFound = errors.New("user not found")

	// ErrIncorrectPassword is returned when the current password supplied with
	// a password change does not match the stored hash.
	ErrIncorrectPassword = errors.New("last password is incorrect")

	// ErrLastPasswordRequired and ErrNewPasswordRequired enforce that a
	// password change always carries both the current and the new password.
	ErrLastPasswordRequired = errors.New("last password is required")
	ErrNewPasswordRequired  = errors.New("new password is required")

	// ErrTooManyAttempts is returned when the login throttle trips for an email.
	ErrTooManyAttempts = errors.New("too many login attempts")
)
