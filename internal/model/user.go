package model

import "fmt"

// UserRole identifies what a staff member is allowed to do in the back
// office. Roles travel as numbers on the wire.
type UserRole int

const (
	// RoleEmployee can file purchase requests.
	RoleEmployee UserRole = 0
	// RoleAnalyst can review spending reports.
	RoleAnalyst UserRole = 1
	// RoleAdmin manages budgets, suppliers, and users.
	RoleAdmin UserRole = 2
)

// String returns the display label for the role.
func (r UserRole) String() string {
	switch r {
	case RoleEmployee:
		return "Employee"
	case RoleAnalyst:
		return "Analyst"
	case RoleAdmin:
		return "Admin"
	default:
		return fmt.Sprintf("UserRole(%d)", int(r))
	}
}

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleEmployee || r == RoleAnalyst || r == RoleAdmin
}

// ParseUserRole maps a case-sensitive role name to its value.
func ParseUserRole(s string) (UserRole, error) {
	switch s {
	case "employee", "Employee":
		return RoleEmployee, nil
	case "analyst", "Analyst":
		return RoleAnalyst, nil
	case "admin", "Admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("unknown user role %q", s)
	}
}

// User represents a staff member account.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Surname string   `json:"surname"`
	Role    UserRole `json:"role"`
	Email   string   `json:"email"`
}

// RecordID returns the server-assigned identifier.
func (u User) RecordID() string { return u.ID }

// FullName returns the display name used in purchase listings.
func (u User) FullName() string {
	return u.Name + " " + u.Surname
}

// CreateUserRequest creates a user. The password is only ever sent on
// creation; updates never carry credentials.
type CreateUserRequest struct {
	Name     string   `json:"name"`
	Surname  string   `json:"surname"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
}

// UpdateUserRequest replaces a user's editable fields.
type UpdateUserRequest struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Surname string   `json:"surname"`
	Role    UserRole `json:"role"`
	Email   string   `json:"email"`
}
