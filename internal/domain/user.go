package domain

// Role determines which complaint operations a caller may perform.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is a credential record. Accounts are seeded at initialization and
// immutable afterwards; there is no registration endpoint. Passwords are
// stored and compared as plaintext.
type User struct {
	Username string
	Password string
	Role     Role
}
