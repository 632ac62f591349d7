package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections in a map. Used for tests and ephemeral runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Read(name string, v any) error {
	s.mu.RLock()
	b, ok := s.data[name]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(b, v)
}

func (s *MemoryStore) Write(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[name] = b
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(name string) error {
	s.mu.Lock()
	delete(s.data, name)
	s.mu.Unlock()
	return nil
}
