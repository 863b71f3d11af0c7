package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/myaccountdemo/account_api/internal/apperrors"
	"github.com/myaccountdemo/account_api/internal/core/domain"
	"github.com/myaccountdemo/account_api/internal/core/services"
	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
	ExecuteOperationFn func(ctx context.Context, op domain.EmployeeOperation, emp models.Employee) (json.RawMessage, error)
}

func (m *MockEmployeeRepository) ExecuteOperation(ctx context.Context, op domain.EmployeeOperation, emp models.Employee) (json.RawMessage, error) {
	if m.ExecuteOperationFn != nil {
		return m.ExecuteOperationFn(ctx, op, emp)
	}
	args := m.Called(ctx, op, emp)
	var payload json.RawMessage
	if args.Get(0) != nil {
		payload = args.Get(0).(json.RawMessage)
	}
	return payload, args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, empDetailsID int64) error {
	args := m.Called(ctx, empDetailsID)
	return args.Error(0)
}

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  *services.EmployeeService
	ctx      context.Context
}

func (s *EmployeeServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockEmployeeRepository)
	s.service = services.NewEmployeeService(s.mockRepo)
	s.ctx = context.Background()
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

func (s *EmployeeServiceTestSuite) TestCreate_Success() {
	name := "carol"
	amount := decimal.NewFromInt(2500)
	emp := models.Employee{EmployeeName: &name, EmployeeAmount: &amount}

	s.mockRepo.On("ExecuteOperation", s.ctx, domain.EmployeeInsert, emp).
		Return(json.RawMessage(`{"success":true,"message":"Employee created successfully","emp_details_id":8}`), nil).Once()

	resp := s.service.Create(s.ctx, emp)

	s.True(resp.Success)
	s.Require().NotNil(resp.EmpDetailsID)
	s.Equal(int64(8), *resp.EmpDetailsID)
}

func (s *EmployeeServiceTestSuite) TestGetByID_Success() {
	s.mockRepo.On("ExecuteOperation", s.ctx, domain.EmployeeSelect, models.Employee{EmpDetailsID: 8}).
		Return(json.RawMessage(`{"success":true,"data":{"emp_details_id":8,"employee_name":"carol","employee_descripation":"driver"}}`), nil).Once()

	resp := s.service.GetByID(s.ctx, 8)

	s.True(resp.Success)
	s.Require().NotNil(resp.Data)
	s.Equal(int64(8), resp.Data.EmpDetailsID)
	s.Require().NotNil(resp.Data.EmployeeDescripation)
	s.Equal("driver", *resp.Data.EmployeeDescripation)
}

func (s *EmployeeServiceTestSuite) TestGetByID_NotFound() {
	s.mockRepo.On("ExecuteOperation", s.ctx, domain.EmployeeSelect, models.Employee{EmpDetailsID: 99}).
		Return(json.RawMessage(`{"success":false,"message":"Employee not found"}`), nil).Once()

	resp := s.service.GetByID(s.ctx, 99)

	s.False(resp.Success)
	s.Equal("Employee not found", resp.Message)
}

func (s *EmployeeServiceTestSuite) TestList_Success() {
	s.mockRepo.On("ExecuteOperation", s.ctx, domain.EmployeeList, models.Employee{}).
		Return(json.RawMessage(`{"success":true,"data":[{"emp_details_id":1},{"emp_details_id":2}],"total":2}`), nil).Once()

	resp := s.service.List(s.ctx)

	s.True(resp.Success)
	s.Len(resp.Data, 2)
	s.Require().NotNil(resp.Total)
	s.Equal(2, *resp.Total)
}

func (s *EmployeeServiceTestSuite) TestUpdate_Success() {
	emp := models.Employee{EmpDetailsID: 3}
	s.mockRepo.On("ExecuteOperation", s.ctx, domain.EmployeeUpdate, emp).
		Return(json.RawMessage(`{"success":true,"message":"Employee updated successfully"}`), nil).Once()

	resp := s.service.Update(s.ctx, emp)

	s.True(resp.Success)
	s.Equal("Employee updated successfully", resp.Message)
}

func (s *EmployeeServiceTestSuite) TestDelete_NotFound() {
	s.mockRepo.On("DeleteEmployee", s.ctx, int64(42)).Return(apperrors.ErrNotFound).Once()

	resp := s.service.Delete(s.ctx, 42)

	s.False(resp.Success)
	s.Equal("Employee not found", resp.Message)
}

func (s *EmployeeServiceTestSuite) TestCreate_RepositoryError() {
	s.mockRepo.On("ExecuteOperation", s.ctx, domain.EmployeeInsert, mock.Anything).
		Return(nil, errors.New("broken pipe")).Once()

	resp := s.service.Create(s.ctx, models.Employee{})

	s.False(resp.Success)
	s.Contains(resp.Message, "Error")
	s.Contains(resp.Message, "broken pipe")
}
