package service

// PasswordHasher abstracts password hashing so the storage layer never sees
// plaintext handling details.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
