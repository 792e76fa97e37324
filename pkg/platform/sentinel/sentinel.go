package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Adapters return these (wrapped)
// so services can translate them into domain errors:
// - ErrNotFound: expected data is missing from the backing store
// - ErrUnavailable: the backing store could not be reached
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
