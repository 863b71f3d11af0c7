package mapping

import (
	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/shopspring/decimal"
)

// RecordSummary holds the page-level aggregates of a records grid query.
type RecordSummary struct {
	TotalGetMoney       decimal.Decimal
	TotalGiveMoney      decimal.Decimal
	TotalInterestAmount decimal.Decimal
	NetBalance          decimal.Decimal
	TotalCount          int
}

// ApplySummaryTotals copies the aggregate columns of the first row onto every
// row of the page, so each row the grid binds to carries identical totals, and
// returns those totals for the response header fields. An empty page yields a
// zero summary.
func ApplySummaryTotals(records []models.AccountRecord) RecordSummary {
	if len(records) == 0 {
		return RecordSummary{}
	}
	first := records[0]
	for i := range records {
		records[i].TotalGetMoney = first.TotalGetMoney
		records[i].TotalGiveMoney = first.TotalGiveMoney
		records[i].TotalInterestAmount = first.TotalInterestAmount
		records[i].NetBalance = first.NetBalance
		records[i].TotalCount = first.TotalCount
	}
	return RecordSummary{
		TotalGetMoney:       first.TotalGetMoney,
		TotalGiveMoney:      first.TotalGiveMoney,
		TotalInterestAmount: first.TotalInterestAmount,
		NetBalance:          first.NetBalance,
		TotalCount:          first.TotalCount,
	}
}
