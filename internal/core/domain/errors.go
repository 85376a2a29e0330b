package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("token not provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is blocked")
	ErrValidation         = errors.New("validation failed")
	ErrUserNotFound       = errors.New("user not found")
	ErrExerciseNotFound   = errors.New("exercise not found")

	// ErrPersistence wraps store failures so callers can tell them apart from
	// not-found results.
	ErrPersistence = errors.New("persistence error")
)
