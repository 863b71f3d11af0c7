package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/handlers"
	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateGetMoney(ctx context.Context, acct models.Account) dto.AccountResponse {
	args := m.Called(ctx, acct)
	return args.Get(0).(dto.AccountResponse)
}

func (m *MockAccountService) CreateGiveMoney(ctx context.Context, acct models.Account) dto.AccountResponse {
	args := m.Called(ctx, acct)
	return args.Get(0).(dto.AccountResponse)
}

func (m *MockAccountService) CreateComplete(ctx context.Context, acct models.Account) dto.AccountResponse {
	args := m.Called(ctx, acct)
	return args.Get(0).(dto.AccountResponse)
}

func (m *MockAccountService) Create(ctx context.Context, acct models.Account) dto.AccountResponse {
	args := m.Called(ctx, acct)
	return args.Get(0).(dto.AccountResponse)
}

func (m *MockAccountService) GetByID(ctx context.Context, acid int64) dto.AccountResponse {
	args := m.Called(ctx, acid)
	return args.Get(0).(dto.AccountResponse)
}

func (m *MockAccountService) List(ctx context.Context) dto.AccountListResponse {
	args := m.Called(ctx)
	return args.Get(0).(dto.AccountListResponse)
}

func (m *MockAccountService) ListByDateRange(ctx context.Context, startDate, endDate *models.Date) dto.AccountListResponse {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).(dto.AccountListResponse)
}

func (m *MockAccountService) Update(ctx context.Context, acct models.Account) dto.AccountResponse {
	args := m.Called(ctx, acct)
	return args.Get(0).(dto.AccountResponse)
}

func (m *MockAccountService) Delete(ctx context.Context, acid int64) dto.AccountResponse {
	args := m.Called(ctx, acid)
	return args.Get(0).(dto.AccountResponse)
}

func successAccountResponse(acid int64) dto.AccountResponse {
	return dto.AccountResponse{
		Envelope: dto.NewEnvelope[*models.Account]("Transaction created successfully", nil),
		Acid:     &acid,
	}
}

type AccountHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAccountService
}

func (s *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockAccountService)
	handler := handlers.NewAccountHandler(s.mockService)

	s.router = gin.New()
	account := s.router.Group("/api/Account")
	account.POST("/CreateGetMoney", handler.CreateGetMoney)
	account.POST("", handler.Create)
	account.GET("", handler.List)
	account.GET("/by-date-range", handler.ListByDateRange)
	account.GET("/:id", handler.GetByID)
	account.PUT("/:id", handler.Update)
	account.DELETE("/:id", handler.Delete)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AccountHandlerTestSuite) TestCreateGetMoney_Success() {
	s.mockService.On("CreateGetMoney", mock.Anything, mock.Anything).
		Return(successAccountResponse(11)).Once()

	w := s.doJSON(http.MethodPost, "/api/Account/CreateGetMoney", models.Account{})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Require().NotNil(resp.Acid)
	s.Equal(int64(11), *resp.Acid)
}

func (s *AccountHandlerTestSuite) TestCreate_ServiceFailureIs400() {
	s.mockService.On("Create", mock.Anything, mock.Anything).
		Return(dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account]("Database error")}).Once()

	w := s.doJSON(http.MethodPost, "/api/Account", models.Account{})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AccountHandlerTestSuite) TestCreate_MalformedBodyIs400() {
	req := httptest.NewRequest(http.MethodPost, "/api/Account", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create")
}

func (s *AccountHandlerTestSuite) TestGetByID_FailureIs404() {
	s.mockService.On("GetByID", mock.Anything, int64(99)).
		Return(dto.AccountResponse{Envelope: dto.FailEnvelope[*models.Account]("Account not found")}).Once()

	w := s.doJSON(http.MethodGet, "/api/Account/99", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *AccountHandlerTestSuite) TestGetByID_NonNumericIDIs400() {
	w := s.doJSON(http.MethodGet, "/api/Account/abc", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "GetByID")
}

func (s *AccountHandlerTestSuite) TestList_Success() {
	s.mockService.On("List", mock.Anything).
		Return(dto.NewEnvelope("ok", []models.Account{{Acid: 1}}).WithTotal(1)).Once()

	w := s.doJSON(http.MethodGet, "/api/Account", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.AccountListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Data, 1)
	s.Require().NotNil(resp.Total)
	s.Equal(1, *resp.Total)
}

func (s *AccountHandlerTestSuite) TestListByDateRange_InvalidDateIs400() {
	w := s.doJSON(http.MethodGet, "/api/Account/by-date-range?start_date=31-02-2026", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "ListByDateRange")
}

func (s *AccountHandlerTestSuite) TestUpdate_PathIDWins() {
	s.mockService.On("Update", mock.Anything, mock.MatchedBy(func(acct models.Account) bool {
		return acct.Acid == 5
	})).Return(dto.AccountResponse{Envelope: dto.NewEnvelope[*models.Account]("updated", nil)}).Once()

	w := s.doJSON(http.MethodPut, "/api/Account/5", map[string]any{"acid": 999})

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AccountHandlerTestSuite) TestDelete_Success() {
	s.mockService.On("Delete", mock.Anything, int64(4)).
		Return(dto.AccountResponse{Envelope: dto.NewEnvelope[*models.Account]("Account deleted successfully", nil)}).Once()

	w := s.doJSON(http.MethodDelete, "/api/Account/4", nil)

	s.Equal(http.StatusOK, w.Code)
}
