package domain

import "time"

// UserRole role of a platform user
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// User represents a platform user. Credentials live in the external auth
// service; this service only stores profile and billing state.
type User struct {
	ID           int64
	Email        string
	Role         UserRole
	FullName     string
	Phone        *string
	Company      *string
	TotalSpent   float64
	ActivePasses []ActivePass
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true for administrator accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
