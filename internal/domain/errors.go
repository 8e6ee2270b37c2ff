package domain

import "errors"

// Sentinel errors for the business rules. Usecases wrap these in
// apperror so handlers get an HTTP code and tests can errors.Is them.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateTitle       = errors.New("offer title already in use")
	ErrDuplicateApplication = errors.New("already applied to this offer")
	ErrMissingCV            = errors.New("candidate has no CV on file")
	ErrSaveAfterApply       = errors.New("cannot save an offer already applied to")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
)
