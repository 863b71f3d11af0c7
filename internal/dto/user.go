package dto

import "github.com/myaccountdemo/account_api/internal/models"

// UserResponse wraps a create_user result. UserID carries the server-assigned
// identifier; the password is never part of any response.
type UserResponse struct {
	Envelope[*models.User]
	UserID *int64 `json:"user_id,omitempty"`
}

// UsersResponse wraps user list results.
type UsersResponse = Envelope[[]models.User]
