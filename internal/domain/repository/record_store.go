package repository

import (
	"context"

	"rsstweetbot/internal/domain/entity"
)

// RecordStore persists publish outcomes keyed by entry url.
type RecordStore interface {
	// Exists reports whether a record for url was already written, by this
	// run or an earlier one. Failures wrap ErrStoreUnavailable and are
	// distinct from "not found".
	Exists(ctx context.Context, url string) (bool, error)
	// Record writes one PublishRecord. A race on the same url is
	// last-write-wins.
	Record(ctx context.Context, record *entity.PublishRecord) error
}
