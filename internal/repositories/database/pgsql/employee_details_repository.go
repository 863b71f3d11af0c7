package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
	"github.com/myaccountdemo/account_api/internal/models"
)

type PgxEmployeeDetailsRepository struct {
	db *pgxpool.Pool
}

func newPgxEmployeeDetailsRepository(db *pgxpool.Pool) portsrepo.EmployeeDetailsRepository {
	return &PgxEmployeeDetailsRepository{db: db}
}

var _ portsrepo.EmployeeDetailsRepository = (*PgxEmployeeDetailsRepository)(nil)

func (r *PgxEmployeeDetailsRepository) CreateEmployee(ctx context.Context, det models.EmployeeDetails) (json.RawMessage, error) {
	payload, err := callScalarRoutine(ctx, r.db,
		`SELECT create_employee($1, $2, $3)`,
		det.EmployeeName,
		det.Email,
		det.PhoneNo,
	)
	if err != nil {
		return nil, fmt.Errorf("create_employee: %w", err)
	}
	return payload, nil
}

func (r *PgxEmployeeDetailsRepository) FetchBasicInfo(ctx context.Context) ([]models.EmployeeDetails, error) {
	rows, err := r.db.Query(ctx, `SELECT employee_id, employee_name FROM get_employees_basic_info()`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees basic info: %w", err)
	}
	defer rows.Close()

	details := []models.EmployeeDetails{}
	for rows.Next() {
		var det models.EmployeeDetails
		if err := rows.Scan(&det.EmployeeID, &det.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		details = append(details, det)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return details, nil
}

func (r *PgxEmployeeDetailsRepository) FetchAllDetails(ctx context.Context) ([]models.EmployeeDetails, error) {
	rows, err := r.db.Query(ctx,
		`SELECT employee_id, employee_name, email, phoneno FROM public.tbl_employee_info ORDER BY employee_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee details: %w", err)
	}
	defer rows.Close()

	details := []models.EmployeeDetails{}
	for rows.Next() {
		var det models.EmployeeDetails
		if err := rows.Scan(&det.EmployeeID, &det.EmployeeName, &det.Email, &det.PhoneNo); err != nil {
			return nil, fmt.Errorf("failed to scan employee details row: %w", err)
		}
		details = append(details, det)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee details rows: %w", rows.Err())
	}
	return details, nil
}
