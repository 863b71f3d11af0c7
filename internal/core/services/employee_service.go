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

// EmployeeService dispatches operations through the manage_employee routine.
type EmployeeService struct {
	repo portsrepo.EmployeeRepository
}

func NewEmployeeService(repo portsrepo.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

var _ portssvc.EmployeeSvcFacade = (*EmployeeService)(nil)

func (s *EmployeeService) Create(ctx context.Context, emp models.Employee) dto.EmployeeResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := s.repo.ExecuteOperation(ctx, domain.EmployeeInsert, emp)
	if err != nil {
		logger.ErrorContext(ctx, "Employee insert failed", "error", err)
		return dto.EmployeeResponse{Envelope: dto.FailEnvelope[*models.Employee](fmt.Sprintf("Error executing operation: %v", err))}
	}

	result := Normalize(domain.EmployeeInsert, payload)
	if !result.Success {
		return dto.EmployeeResponse{Envelope: dto.FailEnvelope[*models.Employee](result.Message)}
	}
	return dto.EmployeeResponse{
		Envelope:     dto.NewEnvelope[*models.Employee](result.Message, nil),
		EmpDetailsID: result.CreatedID,
	}
}

func (s *EmployeeService) GetByID(ctx context.Context, empDetailsID int64) dto.EmployeeResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := s.repo.ExecuteOperation(ctx, domain.EmployeeSelect, models.Employee{EmpDetailsID: empDetailsID})
	if err != nil {
		logger.ErrorContext(ctx, "Employee select failed", "emp_details_id", empDetailsID, "error", err)
		return dto.EmployeeResponse{Envelope: dto.FailEnvelope[*models.Employee](fmt.Sprintf("Error executing operation: %v", err))}
	}

	result := Normalize(domain.EmployeeSelect, payload)
	if !result.Success {
		return dto.EmployeeResponse{Envelope: dto.FailEnvelope[*models.Employee](result.Message)}
	}

	emp, err := mapping.EmployeeFromJSON(result.Data)
	if err != nil {
		logger.ErrorContext(ctx, "Employee payload mapping failed", "emp_details_id", empDetailsID, "error", err)
		return dto.EmployeeResponse{Envelope: dto.FailEnvelope[*models.Employee](fmt.Sprintf("Invalid response format: %v", err))}
	}
	return dto.EmployeeResponse{Envelope: dto.NewEnvelope(result.Message, &emp)}
}

func (s *EmployeeService) List(ctx context.Context) dto.EmployeeListResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := s.repo.ExecuteOperation(ctx, domain.EmployeeList, models.Employee{})
	if err != nil {
		logger.ErrorContext(ctx, "Employee list failed", "error", err)
		return dto.FailEnvelope[[]models.Employee](fmt.Sprintf("Error executing operation: %v", err))
	}

	result := Normalize(domain.EmployeeList, payload)
	if !result.Success {
		return dto.FailEnvelope[[]models.Employee](result.Message)
	}

	employees := []models.Employee{}
	if result.Data != nil {
		employees, err = mapping.EmployeesFromJSON(result.Data)
		if err != nil {
			logger.ErrorContext(ctx, "Employee list mapping failed", "error", err)
			return dto.FailEnvelope[[]models.Employee](fmt.Sprintf("Invalid response format: %v", err))
		}
	}

	total := result.Total
	if total == 0 {
		total = len(employees)
	}
	return dto.NewEnvelope(result.Message, employees).WithTotal(total)
}

func (s *EmployeeService) Update(ctx context.Context, emp models.Employee) dto.EmployeeResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := s.repo.ExecuteOperation(ctx, domain.EmployeeUpdate, emp)
	if err != nil {
		logger.ErrorContext(ctx, "Employee update failed", "emp_details_id", emp.EmpDetailsID, "error", err)
		return dto.EmployeeResponse{Envelope: dto.FailEnvelope[*models.Employee](fmt.Sprintf("Error executing operation: %v", err))}
	}

	result := Normalize(domain.EmployeeUpdate, payload)
	if !result.Success {
		return dto.EmployeeResponse{Envelope: dto.FailEnvelope[*models.Employee](result.Message)}
	}
	return dto.EmployeeResponse{Envelope: dto.NewEnvelope[*models.Employee](result.Message, nil)}
}

func (s *EmployeeService) Delete(ctx context.Context, empDetailsID int64) dto.EmployeeResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.repo.DeleteEmployee(ctx, empDetailsID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return dto.EmployeeResponse{Envelope: dto.FailEnvelope[*models.Employee]("Employee not found")}
		}
		logger.ErrorContext(ctx, "Employee delete failed", "emp_details_id", empDetailsID, "error", err)
		return dto.EmployeeResponse{Envelope: dto.FailEnvelope[*models.Employee](fmt.Sprintf("Error deleting employee: %v", err))}
	}
	return dto.EmployeeResponse{Envelope: dto.NewEnvelope[*models.Employee]("Employee deleted successfully", nil)}
}
