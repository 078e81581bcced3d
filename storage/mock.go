package storage

import (
	"context"
	"sync"

	"github.com/nmoretto/fieldops/types"
)

// MemStore is an in-memory Store for tests. It counts saves so tests
// can assert on save timing; SaveErr and LoadErr force the failure
// paths.
type MemStore struct {
	mu      sync.Mutex
	rec     types.PlayerRecord
	has     bool
	saves   int
	SaveErr error
	LoadErr error
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{}
}

// Seed preloads a record as if it had been saved in an earlier session.
func (s *MemStore) Seed(rec types.PlayerRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	s.has = true
}

func (s *MemStore) Save(ctx context.Context, rec types.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.rec = rec
	s.has = true
	s.saves++
	return nil
}

func (s *MemStore) Load(ctx context.Context) (types.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return types.PlayerRecord{}, s.LoadErr
	}
	if !s.has {
		return types.PlayerRecord{}, ErrNoSave
	}
	return s.rec, nil
}

// Saves reports how many times Save succeeded.
func (s *MemStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Last returns the most recently saved record.
func (s *MemStore) Last() types.PlayerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec
}
