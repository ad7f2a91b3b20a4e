package rss

import (
	"context"
	"fmt"

	"rsstweetbot/internal/domain/entity"
	"rsstweetbot/internal/domain/repository"

	"github.com/mmcdole/gofeed"
)

type feedRepository struct {
	parser *gofeed.Parser
}

func NewFeedRepository() repository.FeedRepository {
	return &feedRepository{
		parser: gofeed.NewParser(),
	}
}

// Fetch returns every item in the feed, including incomplete ones; the
// pipeline decides per entry whether it is usable.
func (r *feedRepository) Fetch(ctx context.Context, url string) ([]*entity.FeedEntry, error) {
	feed, err := r.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	entries := make([]*entity.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, entity.NewFeedEntry(item.Title, item.Link))
	}

	return entries, nil
}
