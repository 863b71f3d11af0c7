package models

import "github.com/shopspring/decimal"

// AccountRecord is one row of the paginated records grid
// (get_account_records_for_grid_with_totals). The summary fields repeat the
// same aggregate values on every row of a page; the query computes them once
// and the mapper copies the first row's values across the page.
type AccountRecord struct {
	TransactionID      int64           `json:"transaction_id"`
	TransactionType    string          `json:"transaction_type"`
	Amount             decimal.Decimal `json:"amount"`
	GetMoney           decimal.Decimal `json:"getmoney"`
	GiveMoney          decimal.Decimal `json:"givemoney"`
	InterestPercentage decimal.Decimal `json:"interest_percentage"`
	InterestAmount     decimal.Decimal `json:"interest_amount"`
	NetAmount          decimal.Decimal `json:"net_amount"`
	GetDate            *Date           `json:"get_date"`
	GiveDate           *Date           `json:"give_date"`
	Agent              *string         `json:"agent"`
	Remark             *string         `json:"remark"`
	UtiNo              decimal.Decimal `json:"utino"`
	PartyName          string          `json:"party_name"`
	FullName           string          `json:"full_name"`
	MobileNo           string          `json:"mobile_no"`
	Email              string          `json:"email"`

	// Summary fields, identical on every row of a page
	TotalGetMoney       decimal.Decimal `json:"total_get_money"`
	TotalGiveMoney      decimal.Decimal `json:"total_give_money"`
	TotalInterestAmount decimal.Decimal `json:"total_interest_amount"`
	NetBalance          decimal.Decimal `json:"net_balance"`
	TotalCount          int             `json:"total_count"`
}
