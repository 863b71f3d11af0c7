package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/myaccountdemo/account_api/internal/core/domain"
	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/middleware"
	"github.com/myaccountdemo/account_api/internal/models"
)

// defaultUserPassword is applied when a create request omits the password.
// Hashing happens inside the create_user routine.
const defaultUserPassword = "default123"

// UserService covers user creation and listing. Passwords are write-only:
// they flow into the routine and never back out.
type UserService struct {
	repo portsrepo.UserRepository
}

func NewUserService(repo portsrepo.UserRepository) *UserService {
	return &UserService{repo: repo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) Create(ctx context.Context, user models.User) dto.UserResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(user.Username) == "" || strings.TrimSpace(user.Email) == "" {
		return dto.UserResponse{Envelope: dto.FailEnvelope[*models.User]("Username and email are required")}
	}

	password := defaultUserPassword
	if user.Password != nil && *user.Password != "" {
		password = *user.Password
	}
	user.Password = nil

	payload, err := s.repo.CreateUser(ctx, user, password)
	if err != nil {
		logger.ErrorContext(ctx, "User create failed", "username", user.Username, "error", err)
		return dto.UserResponse{Envelope: dto.FailEnvelope[*models.User](fmt.Sprintf("Error executing operation: %v", err))}
	}

	result := Normalize(domain.UserCreate, payload)
	if !result.Success {
		return dto.UserResponse{Envelope: dto.FailEnvelope[*models.User](result.Message)}
	}
	return dto.UserResponse{
		Envelope: dto.NewEnvelope[*models.User](result.Message, nil),
		UserID:   result.CreatedID,
	}
}

func (s *UserService) BasicInfo(ctx context.Context) dto.UsersResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	users, err := s.repo.FetchBasicInfo(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "User list query failed", "error", err)
		return dto.FailEnvelope[[]models.User](fmt.Sprintf("Error retrieving users: %v", err))
	}
	for i := range users {
		users[i].Password = nil
	}
	return dto.NewEnvelope("Users retrieved successfully", users).WithTotal(len(users))
}
