package secrets

import (
	"context"

	"rsstweetbot/internal/domain/repository"

	gocache "github.com/patrickmn/go-cache"
)

// cachedRepository memoizes secret lookups for the lifetime of the process,
// so processing many entries in one run hits the store at most once per name.
// Values are write-once; errors are not cached.
type cachedRepository struct {
	inner repository.SecretRepository
	cache *gocache.Cache
}

func NewCachedRepository(inner repository.SecretRepository) repository.SecretRepository {
	return &cachedRepository{
		inner: inner,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func (r *cachedRepository) Get(ctx context.Context, name string) (string, error) {
	if v, ok := r.cache.Get(name); ok {
		return v.(string), nil
	}

	value, err := r.inner.Get(ctx, name)
	if err != nil {
		return "", err
	}
	r.cache.Set(name, value, gocache.NoExpiration)
	return value, nil
}

// GetMany serves cached names locally and fetches only the missing ones in a
// single batched call.
func (r *cachedRepository) GetMany(ctx context.Context, names []string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	var missing []string
	for _, name := range names {
		if v, ok := r.cache.Get(name); ok {
			values[name] = v.(string)
		} else {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return values, nil
	}

	fetched, err := r.inner.GetMany(ctx, missing)
	if err != nil {
		return nil, err
	}
	for name, value := range fetched {
		r.cache.Set(name, value, gocache.NoExpiration)
		values[name] = value
	}
	return values, nil
}
