package store

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Memory is an in-memory store for tests.
type Memory struct {
	docs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: map[string][]byte{}}
}

func (s *Memory) ReadJSON(key string, v any) error {
	data, ok := s.docs[key]
	if !ok {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return json.Unmarshal(data, v)
}

func (s *Memory) WriteJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.docs[key] = data
	return nil
}

// Keys returns every stored key, sorted.
func (s *Memory) Keys() []string {
	keys := make([]string, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
