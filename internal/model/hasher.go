package model

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports false with a nil error on mismatch.
	Verify(plain, encoded string) (bool, error)
}
