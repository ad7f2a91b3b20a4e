package application

import (
	"context"

	"rsstweetbot/internal/domain/entity"
	"rsstweetbot/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// PipelineService drives one batch: pull the feed, skip entries already
// recorded, and shorten/compose/publish/record the rest. One bad entry never
// aborts the remaining entries.
type PipelineService struct {
	feedRepo  repository.FeedRepository
	store     repository.RecordStore
	shortener repository.Shortener
	publisher repository.Publisher

	feedURL      string
	primaryTag   string
	secondaryTag string
}

func NewPipelineService(
	feedRepo repository.FeedRepository,
	store repository.RecordStore,
	shortener repository.Shortener,
	publisher repository.Publisher,
	feedURL, primaryTag, secondaryTag string,
) *PipelineService {
	return &PipelineService{
		feedRepo:     feedRepo,
		store:        store,
		shortener:    shortener,
		publisher:    publisher,
		feedURL:      feedURL,
		primaryTag:   primaryTag,
		secondaryTag: secondaryTag,
	}
}

// Run processes one feed snapshot and returns. Entry-level failures are
// logged, never surfaced: the invoking scheduler decides when to run again.
func (s *PipelineService) Run(ctx context.Context) error {
	if s.feedURL == "" {
		logrus.Info("no feed URL configured, nothing to do")
		return nil
	}

	entries, err := s.feedRepo.Fetch(ctx, s.feedURL)
	if err != nil {
		logrus.WithError(err).WithField("feed_url", s.feedURL).Error("failed to fetch feed")
		return nil
	}

	for _, entry := range entries {
		s.processEntry(ctx, entry)
	}
	return nil
}

func (s *PipelineService) processEntry(ctx context.Context, entry *entity.FeedEntry) {
	if entry.Malformed() {
		logrus.WithFields(logrus.Fields{
			"url":   entry.Link,
			"title": entry.Title,
		}).Warn("malformed feed entry, skipping")
		return
	}

	entry = entry.Normalize()
	log := logrus.WithField("url", entry.Link)

	seen, err := s.store.Exists(ctx, entry.Link)
	if err != nil {
		// Cannot tell whether this url was already posted; publishing
		// anyway could double-post, so the entry is abandoned.
		log.WithError(err).Error("failed to check record store")
		return
	}
	if seen {
		return
	}

	shortURL, err := s.shortener.Shorten(ctx, entry.Link)
	if err != nil {
		log.WithError(err).Warn("failed to shorten url, posting without short link")
		shortURL = ""
	}

	status := entity.ComposeStatus(entry.Title, shortURL, s.primaryTag, s.secondaryTag)
	log.WithField("status", status).Info("publishing")

	result := s.publisher.Publish(ctx, status)
	if !result.Succeeded() {
		log.WithField("error", result.Status).Warn("publish failed, recording the failed attempt")
	}

	// The record captures the attempt's outcome either way, so a failed
	// publish is never retried by a later run.
	if err := s.store.Record(ctx, entity.NewPublishRecord(entry, shortURL, result)); err != nil {
		log.WithError(err).Error("failed to record publish outcome")
	}
}
