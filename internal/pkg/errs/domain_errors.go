package errs

import "errors"

// Categories the handler layer maps onto HTTP statuses. Concrete sentinels in
// the domain and usecase packages are marked with one of these.
var (
	ErrDomainValidation = errors.New("domain validation error")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUpstream         = errors.New("upstream dependency failed")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

var categories = []error{
	ErrDomainValidation,
	ErrNotFound,
	ErrConflict,
	ErrUpstream,
	ErrIdempotencyInProgress,
}
