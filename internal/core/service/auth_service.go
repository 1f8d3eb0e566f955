package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumenhotels/backoffice/internal/api/metrics"
	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

const resetTokenTTL = 15 * time.Minute

// ResetTokenStore abstracts the expiring password-reset token store (Redis).
// Tokens are stored by their SHA-256 hash, never in the clear.
type ResetTokenStore interface {
	Save(ctx context.Context, tokenHash, email string, ttl time.Duration) error
	// Lookup returns the email the token was issued for, or
	// domain.ErrResetTokenInvalid when the token is unknown or expired.
	Lookup(ctx context.Context, tokenHash string) (string, error)
	Delete(ctx context.Context, tokenHash string) error
}

// AuthService implements login with account lockout and the password-reset flow.
type AuthService struct {
	repo      ports.UserRepository
	tokens    ResetTokenStore
	jwtSecret string
	tokenTTL  time.Duration
	baseURL   string
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(repo ports.UserRepository, tokens ResetTokenStore, jwtSecret, baseURL string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		tokens:    tokens,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		baseURL:   baseURL,
		log:       log,
		now:       time.Now,
	}
}

// Login verifies credentials behind the attempt-counting guard. The failure
// counter lives on the user record and is mutated through atomic single-field
// updates so concurrent attempts never lose an increment.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown email is indistinguishable from a wrong password.
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.Active {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	if user.FailedLoginAttempts >= domain.MaxFailedLogins {
		if user.LastFailedLoginAt != nil && now.Sub(*user.LastFailedLoginAt) < domain.LockoutWindow {
			metrics.LoginsTotal.WithLabelValues("locked").Inc()
			return "", nil, domain.ErrAccountLocked
		}
		// The lockout window has elapsed; it expires lazily here, on the
		// next attempt, rather than via any scheduled timer.
		if err := s.repo.ResetLoginAttempts(ctx, user.ID); err != nil {
			return "", nil, fmt.Errorf("reset login attempts: %w", err)
		}
		user.FailedLoginAttempts = 0
		user.LastFailedLoginAt = nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if err := s.repo.RecordFailedLogin(ctx, user.ID, now); err != nil {
			s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to record login failure")
		}
		if user.FailedLoginAttempts+1 >= domain.MaxFailedLogins {
			metrics.AccountLockoutsTotal.Inc()
			s.log.Warn().Str("user_id", user.ID).Msg("account locked after repeated failures")
		}
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.repo.RecordLogin(ctx, user.ID, now); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to record login")
	}
	user.FailedLoginAttempts = 0
	user.LastFailedLoginAt = nil
	user.LastLoginAt = &now

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// ForgotPassword issues a reset token valid for resetTokenTTL. Unknown emails
// are silently ignored so the endpoint cannot be used to enumerate accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	if err := s.tokens.Save(ctx, hashToken(token), user.Email, resetTokenTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	// No mailer is wired yet; the reset link is logged for the operator.
	s.log.Info().
		Str("email", user.Email).
		Str("link", s.baseURL+"/auth/reset-password?token="+token).
		Msg("password reset link issued")

	return nil
}

// ResetPassword consumes a reset token and replaces the stored credential.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return fmt.Errorf("%w: token and password are required", domain.ErrValidation)
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	tokenHash := hashToken(token)
	email, err := s.tokens.Lookup(ctx, tokenHash)
	if err != nil {
		return err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.tokens.Delete(ctx, tokenHash); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete consumed reset token")
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset completed")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// validatePassword enforces the reset-password policy: at least 8 characters
// with an upper, a lower, a digit, and a special character.
func validatePassword(password string) error {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if len(password) < 8 || !upper || !lower || !digit || !special {
		return fmt.Errorf("%w: password must be at least 8 characters and contain an uppercase letter, a lowercase letter, a number, and a special character", domain.ErrValidation)
	}
	return nil
}
