package errors

import "errors"

// Custom application errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseOperation  = errors.New("database operation failed")
	ErrScheduling         = errors.New("scheduling failed")
	ErrInternalServer     = errors.New("internal server error")
)
