package ports

// PasswordHasher is the one-way hash primitive shared by the credential
// store seeding path and the login checks.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Matches reports whether password corresponds to hash. A malformed
	// hash is a plain non-match, never an error.
	Matches(hash, password string) bool
}
