package imagine

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrConfiguration indicates a missing or invalid credential or other
	// startup configuration problem.
	ErrConfiguration = errors.New("configuration error")

	// ErrStorage indicates the output directory cannot be created or accessed.
	ErrStorage = errors.New("storage error")

	// ErrToolNotFound indicates the requested tool does not exist.
	ErrToolNotFound = errors.New("tool not found")
)
