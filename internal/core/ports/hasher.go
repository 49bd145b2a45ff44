package ports

// PasswordHasher is the one-way salted hash primitive used for credentials.
type PasswordHasher interface {
	// Hash returns the salted hash of plaintext, or an error on internal failure.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hashed. A mismatch is not an
	// error condition; it simply returns false.
	Verify(plaintext, hashed string) bool
}
