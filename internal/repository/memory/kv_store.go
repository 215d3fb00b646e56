package memory

import (
	"context"
	"sync"

	"github.com/zoo-visit-planner/internal/domain/repository"
)

type kvStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore создает хранилище в памяти процесса
func NewKVStore() repository.KVStore {
	return &kvStore{data: make(map[string][]byte)}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}
