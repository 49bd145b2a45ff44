package ports

import "context"

// LoginThrottle bounds failed login attempts per email. Implementations keep
// a counter with a sliding expiry; a Redis-backed one is provided in
// infrastructure. Errors from the backing store are advisory: callers fail
// open so a throttle outage never locks out logins.
type LoginThrottle interface {
	// Allow reports whether another attempt for email is permitted.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt for email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
