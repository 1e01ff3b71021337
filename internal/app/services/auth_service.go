package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/auth"
)

// LoginResult is what a successful login hands back to the controller.
type LoginResult struct {
	Account *models.Account
	Token   *auth.IssuedToken
}

// AuthService verifies admin and teacher credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, role models.Role, username, password string) (*LoginResult, error)
}

type authServiceImpl struct {
	accounts AccountStore
	tokens   TokenIssuer
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(accounts AccountStore, tokens TokenIssuer, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, role models.Role, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("Username and password are required")
	}

	account, err := s.accounts.FindByUsername(ctx, role, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			s.logger.Warn().Str("role", string(role)).Str("username", username).Msg("Login attempt for unknown account")
		}
		return nil, err
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		s.logger.Warn().Str("role", string(role)).Str("username", username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(account)
	if err != nil {
		return nil, fmt.Errorf("issue token for %s %d: %w", role, account.ID, err)
	}

	s.logger.Info().Str("role", string(role)).Int64("accountID", account.ID).Msg("Login successful")
	return &LoginResult{Account: account, Token: token}, nil
}
