package errs

import "errors"

// Cross-layer sentinels shared by the usecase and handler layers
var (
	ErrDomainValidation = errors.New("domain validation error")

	// Storage failed for infrastructural reasons. Never carries details to clients.
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
