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

// accountOperationSQL invokes the multiplexed account routine. The parameter
// order is fixed by the routine signature; every field is always bound, nil
// pointers bind as NULL.
const accountOperationSQL = `SELECT account_operation($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

type PgxAccountRepository struct {
	db *pgxpool.Pool
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{db: db}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) ExecuteOperation(ctx context.Context, op domain.AccountOperation, acct models.Account) (json.RawMessage, error) {
	payload, err := callScalarRoutine(ctx, r.db, accountOperationSQL,
		op.Tag(),
		acct.Acid,
		acct.Name,
		acct.GetMoney,
		acct.Intrest,
		acct.GiveMoney,
		acct.Date,
		acct.Agent,
		acct.Remark,
		acct.GiveName,
		acct.GiveRemark,
		acct.UtiNo,
		acct.GiveUtiNo,
		acct.GiveDate,
		acct.GiveAgent,
		acct.StartDate,
		acct.EndDate,
		acct.CharterDescription,
		acct.GiveCharterDescription,
	)
	if err != nil {
		return nil, fmt.Errorf("account_operation %s: %w", op.Tag(), err)
	}
	return payload, nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, acid int64) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	cmdTag, err := conn.Exec(ctx, `DELETE FROM public.tbl_account WHERE acid = $1`, acid)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", acid, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
