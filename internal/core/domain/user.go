package domain

import (
	"errors"
	"time"
)

const (
	RoleGuest        = "GUEST"
	RoleHousekeeping = "HOUSEKEEPING"
	RoleAdmin        = "ADMIN"
)

// Account lockout policy: after MaxFailedLogins consecutive failures the
// account refuses authentication until LockoutWindow has elapsed since the
// last failure. The window is evaluated lazily on the next attempt.
const (
	MaxFailedLogins = 5
	LockoutWindow   = 15 * time.Minute
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountLocked = errors.New("account locked")
var ErrValidation = errors.New("validation failed")
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")

// ValidRole reports whether role is one of the known staff/guest roles.
func ValidRole(role string) bool {
	switch role {
	case RoleGuest, RoleHousekeeping, RoleAdmin:
		return true
	}
	return false
}

// User models a staff member or guest account.
type User struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	Role                string     `json:"role"`
	FailedLoginAttempts int        `json:"-"`
	LastFailedLoginAt   *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	Active              bool       `json:"active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
