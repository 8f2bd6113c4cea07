package model

import "time"

// Role is a fixed role name. Roles are global and created once by seeding.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
	RoleOwner Role = "OWNER"
	RoleStaff Role = "STAFF"
)

// AllRoles returns every role the system knows about, in seeding order.
func AllRoles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleOwner, RoleStaff}
}

// ParseRole maps a raw string onto a known Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleOwner, RoleStaff:
		return Role(s), true
	}
	return "", false
}

// User represents an account in the system
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	PasswordHash  string    `json:"-"` // Do not expose password hash in JSON responses
	SecurityStamp string    `json:"-"` // Rotated whenever credentials change
	Roles         []Role    `json:"roles,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RegisterRequest is used for creating a new account
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdatePermissionRequest targets a user for a role grant
type UpdatePermissionRequest struct {
	Username string `json:"username" binding:"required"`
}

// ChangePasswordRequest carries a credential rotation
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}
