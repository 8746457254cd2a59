package user

import "time"

const (
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleSupervisor = "supervisor"
	RoleEmployee   = "employee"
)

// User is an API account. EmployeeID links the account to the HR
// record it may act for; admin and HR accounts can be unlinked.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	EmployeeID   *string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var roleRank = map[string]int{
	RoleEmployee:   0,
	RoleSupervisor: 1,
	RoleHR:         2,
	RoleAdmin:      3,
}

// HasRole reports whether the user's role is at least the required one.
func (u *User) HasRole(required string) bool {
	return RoleAtLeast(u.Role, required)
}

// RoleAtLeast compares two role names by rank. Unknown roles rank
// below employee.
func RoleAtLeast(role, required string) bool {
	rank, ok := roleRank[role]
	if !ok {
		return false
	}
	return rank >= roleRank[required]
}
