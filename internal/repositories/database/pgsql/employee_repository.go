package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myaccountdemo/account_api/internal/apperrors"
	"github.com/myaccountdemo/account_api/internal/core/domain"
	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
	"github.com/myaccountdemo/account_api/internal/models"
)

const manageEmployeeSQL = `SELECT manage_employee($1, $2, $3, $4, $5, $6)`

type PgxEmployeeRepository struct {
	db *pgxpool.Pool
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{db: db}
}

var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

func (r *PgxEmployeeRepository) ExecuteOperation(ctx context.Context, op domain.EmployeeOperation, emp models.Employee) (json.RawMessage, error) {
	payload, err := callScalarRoutine(ctx, r.db, manageEmployeeSQL,
		op.Tag(),
		emp.EmpDetailsID,
		emp.EmployeeName,
		emp.EmployeeAmount,
		emp.EmployeeDescripation,
		emp.InsertDate,
	)
	if err != nil {
		return nil, fmt.Errorf("manage_employee %s: %w", op.Tag(), err)
	}
	return payload, nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, empDetailsID int64) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	cmdTag, err := conn.Exec(ctx, `DELETE FROM public.tbl_employee WHERE emp_details_id = $1`, empDetailsID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", empDetailsID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
