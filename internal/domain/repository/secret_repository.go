package repository

import "context"

// SecretRepository resolves named credentials from the secret store.
// Failures wrap ErrSecretUnavailable.
type SecretRepository interface {
	Get(ctx context.Context, name string) (string, error)
	GetMany(ctx context.Context, names []string) (map[string]string, error)
}
