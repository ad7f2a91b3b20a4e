package repository

import "context"

// Shortener converts a long URL into a compact one. An error degrades to an
// empty short URL at the caller; it must never abort the batch.
type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}
