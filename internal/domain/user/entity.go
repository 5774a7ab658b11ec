package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full access, sees every staff member's records
	RoleStaff Role = "staff" // Regular employee
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	FullName     *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
