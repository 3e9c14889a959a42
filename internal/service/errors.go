package service

import "errors"

// Sentinel errors the handlers translate to HTTP status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateEmail     = errors.New("user already exists with this email")
	ErrAlreadySaved       = errors.New("job is already saved")
	ErrAlreadyApplied     = errors.New("already applied to this job")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrWrongRole          = errors.New("account doesn't exist with the specified role")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidTransition  = errors.New("application status is final")
	ErrValidation         = errors.New("invalid input")
)
