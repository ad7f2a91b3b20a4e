package repository

import "errors"

// Abstract failure kinds. Infrastructure adapters translate transport errors
// into these so the application layer never depends on SDK error types.
var (
	ErrSecretUnavailable = errors.New("secret unavailable")
	ErrStoreUnavailable  = errors.New("record store unavailable")
)
