package services

import "errors"

// Common errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrPastDate          = errors.New("cannot create tasks for past dates")
	ErrDailyLimitReached = errors.New("daily task limit reached")
	ErrInvalidInput      = errors.New("invalid input")
)
