package repository

import (
	"context"

	"rsstweetbot/internal/domain/entity"
)

// Publisher submits a status message to the social API. Failures are encoded
// in the result, never returned as errors: a failed publish is a recordable
// outcome, not an abort.
type Publisher interface {
	Publish(ctx context.Context, status string) entity.PublishResult
}
