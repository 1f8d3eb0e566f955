package ports

import (
	"context"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

// AuthService gates credential verification behind the account-lockout guard
// and handles the password-reset flow.
type AuthService interface {
	// Login authenticates by email and password, returning a signed token and
	// the user's public identity. Fails with domain.ErrAccountLocked while the
	// lockout window is active and domain.ErrInvalidCredentials otherwise.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ForgotPassword issues a time-boxed reset token for the account. Unknown
	// emails are silently ignored to avoid account enumeration.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword consumes a reset token and stores a new credential.
	ResetPassword(ctx context.Context, token, password string) error
}
