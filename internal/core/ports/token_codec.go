package ports

// TokenClaims is the identity a session token asserts.
type TokenClaims struct {
	UserID int64
	Email  string
}

// TokenCodec signs and verifies the self-contained session token. Verify
// returns domain.ErrInvalidToken for every failure mode so callers cannot
// leak the reason to the client.
type TokenCodec interface {
	Issue(userID int64, email string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
