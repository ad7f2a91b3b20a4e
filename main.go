package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"rsstweetbot/internal/application"
	"rsstweetbot/internal/domain/repository"
	"rsstweetbot/internal/infrastructure/bitly"
	"rsstweetbot/internal/infrastructure/rss"
	"rsstweetbot/internal/infrastructure/secrets"
	"rsstweetbot/internal/infrastructure/storage"
	"rsstweetbot/internal/infrastructure/twitter"
	"rsstweetbot/internal/interfaces/config"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	secretRepo, err := secrets.NewSSMRepository(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create secret store client")
	}
	cachedSecrets := secrets.NewCachedRepository(secretRepo)

	store, err := newRecordStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create record store")
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	service := application.NewPipelineService(
		rss.NewFeedRepository(),
		store,
		bitly.NewShortener(cachedSecrets, bitly.Config{
			LoginParam:  cfg.BitlyLoginParam,
			APIKeyParam: cfg.BitlyAPIKeyParam,
		}),
		twitter.NewStatusRepository(cachedSecrets, twitter.Config{
			ConsumerKeyParam:    cfg.ConsumerKeyParam,
			ConsumerSecretParam: cfg.ConsumerSecretParam,
			AccessTokenParam:    cfg.AccessTokenParam,
			AccessSecretParam:   cfg.AccessSecretParam,
		}),
		cfg.FeedURL,
		cfg.BUHashtag,
		cfg.MyHashtag,
	)

	if err := service.Run(ctx); err != nil {
		logrus.WithError(err).Error("pipeline run failed")
	}
}

func newRecordStore(ctx context.Context, cfg *config.Config) (repository.RecordStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendSQLite:
		return storage.NewSQLiteStore(cfg.SQLitePath)
	case config.StoreBackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewDynamoDBStore(ctx, cfg.DynamoDBTable)
	}
}
