package ports

import (
	"context"
	"time"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

// ListUsersFilter carries the query parameters for listing user accounts.
type ListUsersFilter struct {
	Search string // optional: partial match on name or email
	Page   int    // 1-based
	Limit  int    // rows per page (capped by the service)
}

// UserRepository defines persistence operations for user accounts.
// The login-counter mutations are atomic single-document updates so that
// concurrent authentication attempts never lose an increment.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error

	// RecordFailedLogin atomically increments the failed-login counter and
	// stamps the failure time.
	RecordFailedLogin(ctx context.Context, id string, at time.Time) error
	// ResetLoginAttempts zeroes the counter and clears the failure timestamp.
	ResetLoginAttempts(ctx context.Context, id string) error
	// RecordLogin resets the counter and records a successful login time.
	RecordLogin(ctx context.Context, id string, at time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
