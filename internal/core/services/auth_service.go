package services

import (
	"context"
	"fmt"
	"strings"

	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/middleware"
)

// AuthService authenticates credentials against the database routine and
// issues bearer tokens on success.
type AuthService struct {
	repo   portsrepo.AuthRepository
	issuer portssvc.TokenIssuer
}

func NewAuthService(repo portsrepo.AuthRepository, issuer portssvc.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func (s *AuthService) Authenticate(ctx context.Context, req dto.LoginRequest) dto.LoginResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Empty credentials never reach the database or the signer.
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return failLogin("Username and password are required")
	}

	result, err := s.repo.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Authentication query failed", "username", req.Username, "error", err)
		return failLogin(fmt.Sprintf("Error during authentication: %v", err))
	}
	if result == nil {
		return failLogin("Invalid username or password")
	}
	// The routine reports failures with user_id -1; a success flag alongside
	// that sentinel is still a failure.
	if !result.Success || result.UserID == -1 {
		message := result.Message
		if message == "" {
			message = "Invalid username or password"
		}
		logger.WarnContext(ctx, "Authentication rejected", "username", req.Username)
		return failLogin(message)
	}

	token, expiresAt, err := s.issuer.Issue(result.UserID, req.Username)
	if err != nil {
		logger.ErrorContext(ctx, "Token signing failed", "username", req.Username, "error", err)
		return failLogin(fmt.Sprintf("Error during authentication: %v", err))
	}

	message := result.Message
	if message == "" {
		message = "Login successful"
	}
	username := req.Username
	return dto.LoginResponse{
		Success:   true,
		Message:   message,
		Token:     &token,
		UserID:    result.UserID,
		Username:  &username,
		ExpiresAt: &expiresAt,
	}
}

func failLogin(message string) dto.LoginResponse {
	return dto.LoginResponse{Success: false, Message: message, UserID: -1}
}
