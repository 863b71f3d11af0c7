package dto

import "github.com/myaccountdemo/account_api/internal/models"

// AccountResponse wraps a single-account operation result. Acid carries the
// server-assigned identifier after create operations.
type AccountResponse struct {
	Envelope[*models.Account]
	Acid *int64 `json:"acid,omitempty"`
}

// AccountListResponse wraps account list results.
type AccountListResponse = Envelope[[]models.Account]

// DateRangeParams filters an account list by the transaction date window.
type DateRangeParams struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
