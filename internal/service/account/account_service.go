package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Domenick1991/booktofly/internal/auth"
	"github.com/Domenick1991/booktofly/internal/domain"
	"github.com/Domenick1991/booktofly/internal/repository"
)

type AccountUseCase interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*TokenResult, error)
	ResetToken(ctx context.Context, username string) (*TokenResult, error)
	ChangePassword(ctx context.Context, subject, newPassword string) error
}

// TokenResult carries an issued token together with its lifetime in seconds,
// which is what the authentication endpoints return to clients.
type TokenResult struct {
	Token     string
	ExpiresIn int
}

// Service implements the register/login/reset/change-password flows for one
// principal kind. It is constructed twice: once over the users table with the
// User/UserChange roles, once over the admins table with Admin/AdminChange.
type Service struct {
	principals repository.PrincipalRepository
	hasher     auth.PasswordHasher
	tokens     *auth.TokenIssuer
	loginRole  auth.Role
	resetRole  auth.Role
	loginTTL   time.Duration
	resetTTL   time.Duration
	log        *zap.Logger
}

func NewService(
	principals repository.PrincipalRepository,
	hasher auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	loginRole, resetRole auth.Role,
	loginTTL, resetTTL time.Duration,
	log *zap.Logger,
) *Service {
	return &Service{
		principals: principals,
		hasher:     hasher,
		tokens:     tokens,
		loginRole:  loginRole,
		resetRole:  resetRole,
		loginTTL:   loginTTL,
		resetTTL:   resetTTL,
		log:        log,
	}
}

// Register hashes the password and persists the principal. Uniqueness is
// enforced by the storage layer: a concurrent duplicate registration fails
// with ErrConflict instead of slipping past a read-then-write check.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	if err := s.principals.Create(ctx, &domain.Principal{Username: username, PasswordHash: hash}); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.log.Warn("registration rejected, name taken", zap.String("username", username))
			return fmt.Errorf("%w: username %s", domain.ErrConflict, username)
		}
		return err
	}

	s.log.Info("principal registered", zap.String("username", username), zap.String("role", string(s.loginRole)))
	return nil
}

// Login verifies credentials and issues a login-role token. The failure is
// uniform: the response never reveals whether the name or the password was
// wrong, only the log does.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenResult, error) {
	principal, err := s.principals.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("login failed, username not found", zap.String("username", username))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, principal.PasswordHash) {
		s.log.Warn("login failed, incorrect password", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(principal.Username, s.loginRole, s.loginTTL)
	if err != nil {
		return nil, err
	}

	s.log.Info("login succeeded", zap.String("username", principal.Username))
	return &TokenResult{Token: token, ExpiresIn: int(s.loginTTL.Seconds())}, nil
}

// ResetToken issues a short-lived change-password token without credential
// proof. The narrow role claim and TTL are what keep this acceptable: the
// token authorizes nothing but the change-password endpoint.
func (s *Service) ResetToken(ctx context.Context, username string) (*TokenResult, error) {
	principal, err := s.principals.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: username %s", domain.ErrNotFound, username)
		}
		return nil, err
	}

	token, err := s.tokens.Issue(principal.Username, s.resetRole, s.resetTTL)
	if err != nil {
		return nil, err
	}

	s.log.Info("password reset token issued", zap.String("username", principal.Username))
	return &TokenResult{Token: token, ExpiresIn: int(s.resetTTL.Seconds())}, nil
}

// ChangePassword rehashes and stores the new password for the token subject.
// The subject comes from the verified token, never from the request body, so
// a caller cannot change another principal's password.
func (s *Service) ChangePassword(ctx context.Context, subject, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", domain.ErrValidation)
	}

	principal, err := s.principals.GetByName(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("change password failed, subject not found", zap.String("subject", subject))
			return domain.ErrUnauthorized
		}
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.principals.UpdatePassword(ctx, principal.Username, hash); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return err
	}

	s.log.Info("password changed", zap.String("username", principal.Username))
	return nil
}

var _ AccountUseCase = (*Service)(nil)
