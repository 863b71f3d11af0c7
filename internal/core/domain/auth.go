package domain

// AuthResult is the row returned by the authenticate_user_with_message
// routine. UserID is -1 when no user matched.
type AuthResult struct {
	Success bool
	Message string
	UserID  int64
}
