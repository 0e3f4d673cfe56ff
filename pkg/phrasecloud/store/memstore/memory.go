// Package memstore is an in-memory store.Store implementation, used in
// tests and for single-shot CLI runs with no database path.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/internalerr"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/record"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu       sync.RWMutex
	datasets map[string][]record.Record
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{datasets: make(map[string][]record.Record)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveDataset implements store.Store.
func (s *Store) SaveDataset(ctx context.Context, name string, records []record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]record.Record, len(records))
	for i, r := range records {
		copied[i] = copyRecord(r)
	}
	s.datasets[name] = copied
	return nil
}

// Dataset implements store.Store.
func (s *Store) Dataset(ctx context.Context, name string) ([]record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.datasets[name]
	if !ok {
		return nil, fmt.Errorf("dataset %q: %w", name, internalerr.ErrNotFound)
	}
	out := make([]record.Record, len(records))
	for i, r := range records {
		out[i] = copyRecord(r)
	}
	return out, nil
}

// ListDatasets implements store.Store.
func (s *Store) ListDatasets(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func copyRecord(r record.Record) record.Record {
	out := make(record.Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
