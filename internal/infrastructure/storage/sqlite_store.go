package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rsstweetbot/internal/domain/entity"
	"rsstweetbot/internal/domain/repository"

	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore persists publish records in a local sqlite file, for runs
// outside AWS.
func NewSQLiteStore(dbPath string) (repository.RecordStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	store := &sqliteStore{db: db}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *sqliteStore) initSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS publish_records (
		url TEXT PRIMARY KEY,
		short_url TEXT NOT NULL,
		title TEXT NOT NULL,
		status TEXT NOT NULL,
		created TEXT NOT NULL,
		recorded_at INTEGER NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to execute schema query: %w", err)
	}
	return nil
}

func (s *sqliteStore) Exists(ctx context.Context, url string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(
		ctx,
		"SELECT 1 FROM publish_records WHERE url = ?",
		url,
	).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: failed to query by url: %v", repository.ErrStoreUnavailable, err)
	}
	return true, nil
}

func (s *sqliteStore) Record(ctx context.Context, record *entity.PublishRecord) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO publish_records (url, short_url, title, status, created, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			short_url = excluded.short_url,
			title = excluded.title,
			status = excluded.status,
			created = excluded.created,
			recorded_at = excluded.recorded_at`,
		record.URL,
		record.ShortURL,
		record.Title,
		record.Status,
		record.Created,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert record: %v", repository.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
