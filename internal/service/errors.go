package service

import "errors"

// Domain errors returned by the service layer. The HTTP boundary maps each
// of them to a status code; nothing in this package knows about HTTP.
var (
	// ErrInvalidDataProvided is returned when a request payload fails
	// business validation (missing required fields, malformed values).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when a credential check fails.
	ErrWrongPassword = errors.New("wrong password")

	// ErrAccountInactive is returned when an otherwise valid identity has
	// been deactivated by an admin.
	ErrAccountInactive = errors.New("your account is inactive")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure so
	// callers do not need to inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotOwner is returned when a non-admin caller targets another
	// user's records.
	ErrNotOwner = errors.New("not authorized to access this data")

	// ErrSelfDelete is returned when an identity attempts to delete its own
	// account, a guard against an admin locking themselves out.
	ErrSelfDelete = errors.New("you cannot delete your own account")

	// ErrInvalidVerdict is returned when the verify operation receives a
	// status outside {verified, rejected}.
	ErrInvalidVerdict = errors.New(`invalid status. use "verified" or "rejected"`)

	// ErrMissingReceipt is returned when the upload-receipt operation runs
	// without an uploaded file.
	ErrMissingReceipt = errors.New("please upload a receipt file")
)
