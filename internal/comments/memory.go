package comments

import (
	"context"
	"sync"
)

// MemoryStore keeps the mapping in process memory.
type MemoryStore struct {
	mu  sync.Mutex
	all map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{all: make(map[string]string)}
}

func (s *MemoryStore) GetAll(_ context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.all), nil
}

func (s *MemoryStore) SetAll(_ context.Context, all map[string]string) error {
	s.mu.Lock()
	s.all = clone(all)
	s.mu.Unlock()
	return nil
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
