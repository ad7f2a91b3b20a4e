package storage

import (
	"context"
	"sync"

	"rsstweetbot/internal/domain/entity"
	"rsstweetbot/internal/domain/repository"
)

// memoryStore keeps publish records in memory. Useful for tests and dry
// runs; nothing survives the process.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]*entity.PublishRecord
}

func NewMemoryStore() repository.RecordStore {
	return &memoryStore{
		records: make(map[string]*entity.PublishRecord),
	}
}

func (s *memoryStore) Exists(ctx context.Context, url string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[url]
	return ok, nil
}

func (s *memoryStore) Record(ctx context.Context, record *entity.PublishRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.URL] = record
	return nil
}
