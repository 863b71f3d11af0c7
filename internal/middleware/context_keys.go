package middleware

type contextKey string

const (
	// LoggerKey stores the request-scoped slog logger.
	LoggerKey contextKey = "logger"
	// RequestIDKey stores the generated request id.
	RequestIDKey contextKey = "request_id"
	// UserIDKey stores the authenticated caller's user id claim.
	UserIDKey contextKey = "user_id"
	// UsernameKey stores the authenticated caller's username claim.
	UsernameKey contextKey = "username"
)
