package kvstore

import (
	"context"
	"sync"
	"time"
)

// MemoryStore guarda tudo em um mapa do processo. Nada sobrevive ao reinício.
type MemoryStore struct {
	mu       sync.Mutex
	data     map[string]string
	counters map[string]counterEntry
	now      func() time.Time
}

type counterEntry struct {
	count     int64
	expiresAt time.Time
}

// NewMemoryStore cria um armazenamento vazio.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:     make(map[string]string),
		counters: make(map[string]counterEntry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return val, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Incr segue a semântica do INCR + EXPIRE do Redis.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.counters[key]
	if !ok || !now.Before(entry.expiresAt) {
		entry = counterEntry{expiresAt: now.Add(window)}
	}
	entry.count++
	s.counters[key] = entry
	return entry.count, nil
}

func (s *MemoryStore) Close() error { return nil }
