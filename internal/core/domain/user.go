package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role belongs to the fixed role set.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// RoleAllowed decides whether a verified role satisfies a required role.
// Pure comparison; it never re-verifies the token the role came from.
func RoleAllowed(role, required string) bool {
	return role == required
}

// User models a registered account. Users are seeded at startup and
// immutable afterwards; the plaintext password never leaves the seeding
// path.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
