package models

// User is an application login (tbl_users). Password is write-only: it is
// accepted on create and never echoed in any response.
type User struct {
	UserID   int64   `json:"user_id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	MobileNo *string `json:"mobile_no"`
	FullName *string `json:"full_name"`
	Password *string `json:"password,omitempty"`
	IsActive bool    `json:"is_active"`

	CreatedAt *Date `json:"created_at"`
	UpdatedAt *Date `json:"updated_at"`
}
