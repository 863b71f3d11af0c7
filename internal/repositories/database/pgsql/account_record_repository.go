package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/shopspring/decimal"
)

const accountRecordsSQL = `
	SELECT transaction_id, transaction_type, amount, getmoney, givemoney,
	       interest_percentage, interest_amount, net_amount,
	       get_date, give_date, agent, remark, utino,
	       party_name, full_name, mobile_no, email,
	       total_get_money, total_give_money, total_interest_amount,
	       net_balance, total_count
	FROM get_account_records_for_grid_with_totals($1, $2, $3, $4, $5, $6, $7)`

type PgxAccountRecordRepository struct {
	db *pgxpool.Pool
}

func newPgxAccountRecordRepository(db *pgxpool.Pool) portsrepo.AccountRecordRepository {
	return &PgxAccountRecordRepository{db: db}
}

var _ portsrepo.AccountRecordRepository = (*PgxAccountRecordRepository)(nil)

func (r *PgxAccountRecordRepository) FetchRecords(ctx context.Context, q portsrepo.AccountRecordsQuery) ([]models.AccountRecord, error) {
	rows, err := r.db.Query(ctx, accountRecordsSQL,
		q.Username, q.FromDate, q.ToDate, q.Skip, q.Take, q.SortBy, q.SortDir)
	if err != nil {
		return nil, fmt.Errorf("failed to query account records: %w", err)
	}
	defer rows.Close()

	records := []models.AccountRecord{}
	for rows.Next() {
		var (
			rec      models.AccountRecord
			getDate  *models.Date
			giveDate *models.Date
			utino    decimal.NullDecimal
		)
		err := rows.Scan(
			&rec.TransactionID,
			&rec.TransactionType,
			&rec.Amount,
			&rec.GetMoney,
			&rec.GiveMoney,
			&rec.InterestPercentage,
			&rec.InterestAmount,
			&rec.NetAmount,
			&getDate,
			&giveDate,
			&rec.Agent,
			&rec.Remark,
			&utino,
			&rec.PartyName,
			&rec.FullName,
			&rec.MobileNo,
			&rec.Email,
			&rec.TotalGetMoney,
			&rec.TotalGiveMoney,
			&rec.TotalInterestAmount,
			&rec.NetBalance,
			&rec.TotalCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account record row: %w", err)
		}
		rec.GetDate = getDate
		rec.GiveDate = giveDate
		if utino.Valid {
			rec.UtiNo = utino.Decimal
		}
		records = append(records, rec)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account record rows: %w", rows.Err())
	}
	return records, nil
}
