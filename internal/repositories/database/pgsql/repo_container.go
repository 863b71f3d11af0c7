package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository onto the shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Account:         newPgxAccountRepository(db),
		AccountRecord:   newPgxAccountRecordRepository(db),
		Employee:        newPgxEmployeeRepository(db),
		EmployeeDetails: newPgxEmployeeDetailsRepository(db),
		User:            newPgxUserRepository(db),
		Auth:            newPgxAuthRepository(db),
	}
}
