package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/myaccountdemo/account_api/internal/apperrors"
	"github.com/myaccountdemo/account_api/internal/core/domain"
	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/middleware"
	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/myaccountdemo/account_api/internal/utils/mapping"
)

// AccountService dispatches account operations through the account_operation
// routine and normalizes the routine's payloads into response envelopes.
type AccountService struct {
	repo portsrepo.AccountRepository
}

func NewAccountService(repo portsrepo.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func (s *AccountService) CreateGetMoney(ctx context.Context, acct models.Account) dto.AccountResponse {
	return s.create(ctx, domain.AccountCreateGetMoney, acct)
}

func (s *AccountService) CreateGiveMoney(ctx context.Context, acct models.Account) dto.AccountResponse {
	return s.create(ctx, domain.AccountCreateGiveMoney, acct)
}

func (s *AccountService) CreateComplete(ctx context.Context, acct models.Account) dto.AccountResponse {
	return s.create(ctx, domain.AccountCreateComplete, acct)
}

func (s *AccountService) Create(ctx context.Context, acct models.Account) dto.AccountResponse {
	return s.create(ctx, domain.AccountCreate, acct)
}

func (s *AccountService) create(ctx context.Context, op domain.AccountOperation, acct models.Account) dto.AccountResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := s.repo.ExecuteOperation(ctx, op, acct)
	if err != nil {
		logger.ErrorContext(ctx, "Account operation failed", "operation", op.Tag(), "error", err)
		return dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account](fmt.Sprintf("Error executing operation: %v", err))}
	}

	result := Normalize(op, payload)
	if !result.Success {
		logger.WarnContext(ctx, "Account operation rejected", "operation", op.Tag(), "message", result.Message)
		return dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account](result.Message)}
	}

	return dto.AccountResponse{
		Envelope: dto.NewEnvelope[*models.Account](result.Message, nil),
		Acid:     result.CreatedID,
	}
}

func (s *AccountService) GetByID(ctx context.Context, acid int64) dto.AccountResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := s.repo.ExecuteOperation(ctx, domain.AccountRead, models.Account{Acid: acid})
	if err != nil {
		logger.ErrorContext(ctx, "Account read failed", "acid", acid, "error", err)
		return dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account](fmt.Sprintf("Error executing operation: %v", err))}
	}

	result := Normalize(domain.AccountRead, payload)
	if !result.Success {
		return dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account](result.Message)}
	}

	acct, err := mapping.AccountFromJSON(result.Data)
	if err != nil {
		logger.ErrorContext(ctx, "Account payload mapping failed", "acid", acid, "error", err)
		return dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account](fmt.Sprintf("Invalid response format: %v", err))}
	}

	return dto.AccountResponse{Envelope: dto.NewEnvelope(result.Message, &acct)}
}

func (s *AccountService) List(ctx context.Context) dto.AccountListResponse {
	return s.list(ctx, models.Account{})
}

func (s *AccountService) ListByDateRange(ctx context.Context, startDate, endDate *models.Date) dto.AccountListResponse {
	return s.list(ctx, models.Account{StartDate: startDate, EndDate: endDate})
}

func (s *AccountService) list(ctx context.Context, filter models.Account) dto.AccountListResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := s.repo.ExecuteOperation(ctx, domain.AccountList, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Account list failed", "error", err)
		return dto.FailEnvelope[[]models.Account](fmt.Sprintf("Error executing operation: %v", err))
	}

	result := Normalize(domain.AccountList, payload)
	if !result.Success {
		return dto.FailEnvelope[[]models.Account](result.Message)
	}

	accounts := []models.Account{}
	if result.Data != nil {
		accounts, err = mapping.AccountsFromJSON(result.Data)
		if err != nil {
			logger.ErrorContext(ctx, "Account list mapping failed", "error", err)
			return dto.FailEnvelope[[]models.Account](fmt.Sprintf("Invalid response format: %v", err))
		}
	}

	total := result.Total
	if total == 0 {
		total = len(accounts)
	}
	return dto.NewEnvelope(result.Message, accounts).WithTotal(total)
}

func (s *AccountService) Update(ctx context.Context, acct models.Account) dto.AccountResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := s.repo.ExecuteOperation(ctx, domain.AccountUpdate, acct)
	if err != nil {
		logger.ErrorContext(ctx, "Account update failed", "acid", acct.Acid, "error", err)
		return dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account](fmt.Sprintf("Error executing operation: %v", err))}
	}

	result := Normalize(domain.AccountUpdate, payload)
	if !result.Success {
		return dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account](result.Message)}
	}
	return dto.AccountResponse{Envelope: dto.NewEnvelope[*models.Account](result.Message, nil)}
}

func (s *AccountService) Delete(ctx context.Context, acid int64) dto.AccountResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.repo.DeleteAccount(ctx, acid); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account]("Account not found")}
		}
		logger.ErrorContext(ctx, "Account delete failed", "acid", acid, "error", err)
		return dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account](fmt.Sprintf("Error deleting account: %v", err))}
	}
	return dto.AccountResponse{Envelope: dto.NewEnvelope[*models.Account]("Account deleted successfully", nil)}
}
