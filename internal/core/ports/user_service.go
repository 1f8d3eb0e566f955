package ports

import (
	"context"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

// CreateUserInput carries the fields for provisioning a new account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries a partial account update; nil fields are unchanged.
type UpdateUserInput struct {
	Name   *string
	Role   *string
	Active *bool
}

// UserPage is a single page of accounts plus pagination metadata.
type UserPage struct {
	Users      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines the admin-facing account management operations.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, filter ListUsersFilter) (*UserPage, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
