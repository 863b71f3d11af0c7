package models

import "github.com/shopspring/decimal"

// Account is one two-sided money transaction row (tbl_account). The get-money
// leg and the give-money leg are independently nullable: a row may carry
// either leg alone or both ("complete"). Field names follow the wire shape
// the frontend already depends on.
type Account struct {
	Acid int64 `json:"acid"`

	// Get-money leg
	Name     *string          `json:"name"`
	GetMoney *decimal.Decimal `json:"getmoney"`
	Intrest  *decimal.Decimal `json:"intrest"`
	Date     *Date            `json:"date"`
	Agent    *string          `json:"agent"`
	Remark   *string          `json:"remark"`
	UtiNo    *decimal.Decimal `json:"utino"`

	// Give-money leg
	GiveMoney  *decimal.Decimal `json:"givemoney"`
	GiveName   *string          `json:"givename"`
	GiveRemark *string          `json:"giveremark"`
	GiveUtiNo  *decimal.Decimal `json:"giveutino"`
	GiveDate   *Date            `json:"givedate"`
	GiveAgent  *string          `json:"giveagent"`

	CharterDescription     *string `json:"charterDescription"`
	GiveCharterDescription *string `json:"giveCharterDescription"`

	CreatedAt  *Date `json:"created_at"`
	ModifiedAt *Date `json:"modified_at"`

	// LIST filter window, bound as routine parameters, never stored.
	StartDate *Date `json:"start_date"`
	EndDate   *Date `json:"end_date"`

	IsMoney *bool `json:"ismoney"`
}
