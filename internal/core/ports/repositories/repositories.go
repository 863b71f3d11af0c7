package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/myaccountdemo/account_api/internal/core/domain"
	"github.com/myaccountdemo/account_api/internal/models"
)

// AccountRepository dispatches tagged operations to the account_operation
// routine. ExecuteOperation binds every account field as a nullable
// positional parameter and returns the routine's raw JSON payload; a nil
// payload means the routine returned NULL.
type AccountRepository interface {
	ExecuteOperation(ctx context.Context, op domain.AccountOperation, acct models.Account) (json.RawMessage, error)

	// DeleteAccount removes the row directly. Returns apperrors.ErrNotFound
	// when no row matched.
	DeleteAccount(ctx context.Context, acid int64) error
}

// AccountRecordsQuery is the parameter set of the records grid routine.
type AccountRecordsQuery struct {
	Username string
	FromDate *time.Time
	ToDate   *time.Time
	Skip     int
	Take     int
	SortBy   string
	SortDir  string
}

// AccountRecordRepository reads the paginated records grid. Each returned row
// carries the page-level summary columns as produced by the query.
type AccountRecordRepository interface {
	FetchRecords(ctx context.Context, q AccountRecordsQuery) ([]models.AccountRecord, error)
}

// EmployeeRepository dispatches tagged operations to the manage_employee
// routine.
type EmployeeRepository interface {
	ExecuteOperation(ctx context.Context, op domain.EmployeeOperation, emp models.Employee) (json.RawMessage, error)

	// DeleteEmployee removes the row directly. Returns apperrors.ErrNotFound
	// when no row matched.
	DeleteEmployee(ctx context.Context, empDetailsID int64) error
}

// EmployeeDetailsRepository covers the tbl_employee_info entity. AllDetails
// is part of the interface: every caller goes through the abstraction, no
// concrete-type escape hatch.
type EmployeeDetailsRepository interface {
	CreateEmployee(ctx context.Context, det models.EmployeeDetails) (json.RawMessage, error)
	FetchBasicInfo(ctx context.Context) ([]models.EmployeeDetails, error)
	FetchAllDetails(ctx context.Context) ([]models.EmployeeDetails, error)
}

// UserRepository covers the tbl_users entity.
type UserRepository interface {
	// CreateUser invokes create_user with the resolved password and returns
	// the routine's raw JSON payload.
	CreateUser(ctx context.Context, user models.User, password string) (json.RawMessage, error)
	FetchBasicInfo(ctx context.Context) ([]models.User, error)
}

// AuthRepository checks credentials via authenticate_user_with_message.
// A nil result with a nil error means the routine returned no row.
type AuthRepository interface {
	Authenticate(ctx context.Context, username, password string) (*domain.AuthResult, error)
}

// RepositoryProvider bundles all repositories for service wiring.
type RepositoryProvider struct {
	Account         AccountRepository
	AccountRecord   AccountRecordRepository
	Employee        EmployeeRepository
	EmployeeDetails EmployeeDetailsRepository
	User            UserRepository
	Auth            AuthRepository
}
