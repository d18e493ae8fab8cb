package errs

import "errors"

// Error kinds surfaced by the booking usecases; match with errors.Is.
var (
	ErrValidation              = errors.New("validation failed")
	ErrNotFound                = errors.New("not found")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
	ErrStoreUnavailable        = errors.New("store unavailable")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
