package services

import (
	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/platform/config"
)

// NewServiceContainer wires every service onto the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) portssvc.ServiceContainer {
	return portssvc.ServiceContainer{
		Account:         NewAccountService(repos.Account),
		AccountRecord:   NewAccountRecordService(repos.AccountRecord),
		Employee:        NewEmployeeService(repos.Employee),
		EmployeeDetails: NewEmployeeDetailsService(repos.EmployeeDetails),
		User:            NewUserService(repos.User),
		Auth:            NewAuthService(repos.Auth, NewJWTIssuer(cfg)),
	}
}
