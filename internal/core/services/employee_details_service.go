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

// EmployeeDetailsService covers the contact-info employee entity.
type EmployeeDetailsService struct {
	repo portsrepo.EmployeeDetailsRepository
}

func NewEmployeeDetailsService(repo portsrepo.EmployeeDetailsRepository) *EmployeeDetailsService {
	return &EmployeeDetailsService{repo: repo}
}

var _ portssvc.EmployeeDetailsSvcFacade = (*EmployeeDetailsService)(nil)

func (s *EmployeeDetailsService) Create(ctx context.Context, det models.EmployeeDetails) dto.EmployeeDetailsResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(det.EmployeeName) == "" {
		return dto.EmployeeDetailsResponse{Envelope: dto.FailEnvelope[*models.EmployeeDetails]("Employee name is required")}
	}

	payload, err := s.repo.CreateEmployee(ctx, det)
	if err != nil {
		logger.ErrorContext(ctx, "Employee details create failed", "error", err)
		return dto.EmployeeDetailsResponse{Envelope: dto.FailEnvelope[*models.EmployeeDetails](fmt.Sprintf("Error executing operation: %v", err))}
	}

	result := Normalize(domain.EmployeeDetailsCreate, payload)
	if !result.Success {
		return dto.EmployeeDetailsResponse{Envelope: dto.FailEnvelope[*models.EmployeeDetails](result.Message)}
	}
	return dto.EmployeeDetailsResponse{
		Envelope:   dto.NewEnvelope[*models.EmployeeDetails](result.Message, nil),
		EmployeeID: result.CreatedID,
	}
}

func (s *EmployeeDetailsService) BasicInfo(ctx context.Context) dto.EmployeeDetailsListResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	details, err := s.repo.FetchBasicInfo(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Employee basic info query failed", "error", err)
		return dto.FailEnvelope[[]models.EmployeeDetails](fmt.Sprintf("Error retrieving employees: %v", err))
	}
	return dto.NewEnvelope("Employees retrieved successfully", details).WithTotal(len(details))
}

func (s *EmployeeDetailsService) AllDetails(ctx context.Context) dto.EmployeeDetailsListResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	details, err := s.repo.FetchAllDetails(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Employee details query failed", "error", err)
		return dto.FailEnvelope[[]models.EmployeeDetails](fmt.Sprintf("Error retrieving employees: %v", err))
	}
	return dto.NewEnvelope("Employees retrieved successfully", details).WithTotal(len(details))
}
