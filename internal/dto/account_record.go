package dto

import (
	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/shopspring/decimal"
)

// SortDescriptor is one grid sort instruction. Field names are whitelisted
// by the sortfield validator; only the first descriptor is honored.
type SortDescriptor struct {
	Field string `json:"field" binding:"omitempty,sortfield"`
	Dir   string `json:"dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// AccountRecordsRequest is the body of POST /api/AccountRecord/records.
type AccountRecordsRequest struct {
	Username string           `json:"username"`
	FromDate string           `json:"from_date"`
	ToDate   string           `json:"to_date"`
	Skip     int              `json:"skip" binding:"omitempty,gte=0"`
	Take     int              `json:"take" binding:"omitempty,gte=0"`
	Sort     []SortDescriptor `json:"sort"`
}

// AccountRecordsResponse is the paginated grid envelope. The summary totals
// are page-level aggregates, duplicated from the rows they summarize.
type AccountRecordsResponse struct {
	Envelope[[]models.AccountRecord]
	TotalGetMoney       decimal.Decimal `json:"total_get_money"`
	TotalGiveMoney      decimal.Decimal `json:"total_give_money"`
	TotalInterestAmount decimal.Decimal `json:"total_interest_amount"`
	NetBalance          decimal.Decimal `json:"net_balance"`
}
