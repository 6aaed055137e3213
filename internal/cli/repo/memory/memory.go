package memory

import (
	"context"
	"sync"

	"FitHub/internal/cli/repo"
)

// Store — KeyValue в памяти процесса. Ничего не переживает перезапуск;
// используется для --store=memory и в тестах.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ repo.KeyValue = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Store) Close() error { return nil }
