package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/myaccountdemo/account_api/internal/core/services"
	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeDetailsRepository ---
type MockEmployeeDetailsRepository struct {
	mock.Mock
}

func (m *MockEmployeeDetailsRepository) CreateEmployee(ctx context.Context, det models.EmployeeDetails) (json.RawMessage, error) {
	args := m.Called(ctx, det)
	var payload json.RawMessage
	if args.Get(0) != nil {
		payload = args.Get(0).(json.RawMessage)
	}
	return payload, args.Error(1)
}

func (m *MockEmployeeDetailsRepository) FetchBasicInfo(ctx context.Context) ([]models.EmployeeDetails, error) {
	args := m.Called(ctx)
	var details []models.EmployeeDetails
	if args.Get(0) != nil {
		details = args.Get(0).([]models.EmployeeDetails)
	}
	return details, args.Error(1)
}

func (m *MockEmployeeDetailsRepository) FetchAllDetails(ctx context.Context) ([]models.EmployeeDetails, error) {
	args := m.Called(ctx)
	var details []models.EmployeeDetails
	if args.Get(0) != nil {
		details = args.Get(0).([]models.EmployeeDetails)
	}
	return details, args.Error(1)
}

type EmployeeDetailsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeDetailsRepository
	service  *services.EmployeeDetailsService
	ctx      context.Context
}

func (s *EmployeeDetailsServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockEmployeeDetailsRepository)
	s.service = services.NewEmployeeDetailsService(s.mockRepo)
	s.ctx = context.Background()
}

func TestEmployeeDetailsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeDetailsServiceTestSuite))
}

func (s *EmployeeDetailsServiceTestSuite) TestCreate_Success() {
	det := models.EmployeeDetails{EmployeeName: "dave"}
	s.mockRepo.On("CreateEmployee", s.ctx, det).
		Return(json.RawMessage(`{"success":true,"message":"Employee created successfully","employee_id":14}`), nil).Once()

	resp := s.service.Create(s.ctx, det)

	s.True(resp.Success)
	s.Require().NotNil(resp.EmployeeID)
	s.Equal(int64(14), *resp.EmployeeID)
}

func (s *EmployeeDetailsServiceTestSuite) TestCreate_NameRequired() {
	resp := s.service.Create(s.ctx, models.EmployeeDetails{EmployeeName: "  "})

	s.False(resp.Success)
	s.Equal("Employee name is required", resp.Message)
	s.mockRepo.AssertNotCalled(s.T(), "CreateEmployee")
}

func (s *EmployeeDetailsServiceTestSuite) TestBasicInfo_Success() {
	s.mockRepo.On("FetchBasicInfo", s.ctx).
		Return([]models.EmployeeDetails{{EmployeeID: 1, EmployeeName: "dave"}}, nil).Once()

	resp := s.service.BasicInfo(s.ctx)

	s.True(resp.Success)
	s.Len(resp.Data, 1)
	s.Require().NotNil(resp.Total)
	s.Equal(1, *resp.Total)
}

func (s *EmployeeDetailsServiceTestSuite) TestAllDetails_QueryError() {
	s.mockRepo.On("FetchAllDetails", s.ctx).Return(nil, errors.New("timeout")).Once()

	resp := s.service.AllDetails(s.ctx)

	s.False(resp.Success)
	s.Contains(resp.Message, "Error retrieving employees")
}
