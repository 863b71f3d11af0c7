package dto

import "time"

// LoginRequest carries login credentials. Emptiness is checked by the auth
// service, not binding, so the failure comes back as an envelope rather
// than a bind error.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the login envelope. UserID is -1 on failure.
type LoginResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Token     *string    `json:"token"`
	UserID    int64      `json:"user_id"`
	Username  *string    `json:"username"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// TokenIdentityResponse is returned by validate-token for an authenticated
// caller.
type TokenIdentityResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
