package services

import (
	"context"
	"time"

	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/models"
)

// AccountSvcFacade exposes the account transaction operations. Every method
// returns a complete envelope; faults are converted inside the service and
// never surface as errors.
type AccountSvcFacade interface {
	CreateGetMoney(ctx context.Context, acct models.Account) dto.AccountResponse
	CreateGiveMoney(ctx context.Context, acct models.Account) dto.AccountResponse
	CreateComplete(ctx context.Context, acct models.Account) dto.AccountResponse
	Create(ctx context.Context, acct models.Account) dto.AccountResponse
	GetByID(ctx context.Context, acid int64) dto.AccountResponse
	List(ctx context.Context) dto.AccountListResponse
	ListByDateRange(ctx context.Context, startDate, endDate *models.Date) dto.AccountListResponse
	Update(ctx context.Context, acct models.Account) dto.AccountResponse
	Delete(ctx context.Context, acid int64) dto.AccountResponse
}

// AccountRecordSvcFacade serves the paginated records grid.
type AccountRecordSvcFacade interface {
	GetRecords(ctx context.Context, req dto.AccountRecordsRequest) dto.AccountRecordsResponse
}

// EmployeeSvcFacade exposes the manage_employee operations.
type EmployeeSvcFacade interface {
	Create(ctx context.Context, emp models.Employee) dto.EmployeeResponse
	GetByID(ctx context.Context, empDetailsID int64) dto.EmployeeResponse
	List(ctx context.Context) dto.EmployeeListResponse
	Update(ctx context.Context, emp models.Employee) dto.EmployeeResponse
	Delete(ctx context.Context, empDetailsID int64) dto.EmployeeResponse
}

// EmployeeDetailsSvcFacade exposes the employee-details operations.
type EmployeeDetailsSvcFacade interface {
	Create(ctx context.Context, det models.EmployeeDetails) dto.EmployeeDetailsResponse
	BasicInfo(ctx context.Context) dto.EmployeeDetailsListResponse
	AllDetails(ctx context.Context) dto.EmployeeDetailsListResponse
}

// UserSvcFacade exposes the user operations.
type UserSvcFacade interface {
	Create(ctx context.Context, user models.User) dto.UserResponse
	BasicInfo(ctx context.Context) dto.UsersResponse
}

// AuthSvcFacade authenticates credentials and issues bearer tokens.
type AuthSvcFacade interface {
	Authenticate(ctx context.Context, req dto.LoginRequest) dto.LoginResponse
}

// TokenIssuer signs bearer tokens. Split from the auth service so tests can
// count signing calls.
type TokenIssuer interface {
	Issue(userID int64, username string) (token string, expiresAt time.Time, err error)
}

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Account         AccountSvcFacade
	AccountRecord   AccountRecordSvcFacade
	Employee        EmployeeSvcFacade
	EmployeeDetails EmployeeDetailsSvcFacade
	User            UserSvcFacade
	Auth            AuthSvcFacade
}
