package domain

import (
	"fmt"
	"time"
)

// Role is the fixed access level assigned to a user. Exactly one role per
// user; permissions derive from role membership alone.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

// ParseRole validates a role name from untrusted input.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleViewer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }

// User is the identity record. Email is the unique, case-sensitive key.
// Users are never hard-deleted; deactivation flips IsActive instead.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt encoded, never reversible
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}
