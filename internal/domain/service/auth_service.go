package service

// PasswordHasher abstracts one-way password hashing so the application layer
// stays free of the concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// A malformed hash is simply a mismatch, never an error.
	Check(password, hash string) bool
}

// Claims is the identity payload embedded in a token.
type Claims struct {
	UserID string
	Email  string
}

// TokenService issues and verifies signed, expiring identity tokens.
type TokenService interface {
	Issue(claims Claims) (string, error)

	// Verify returns the embedded claims. It fails on a bad signature, a
	// malformed token, an expired token, or a token without a user id.
	Verify(token string) (*Claims, error)
}
