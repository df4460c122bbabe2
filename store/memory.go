package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// MemoryStore keeps snapshots in process memory. The mutex covers the whole
// read-modify-write in Update, so it is a single-writer section per store.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailWrites makes every Set/Update fail with ErrPersistence; used by
	// tests to simulate storage quota and connection failures.
	FailWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(key, v)
}

func (s *MemoryStore) get(key string, v any) error {
	data, ok := s.data[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}
	return nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(key, v)
}

func (s *MemoryStore) set(key string, v any) error {
	if s.FailWrites {
		return fmt.Errorf("%w: key %q", ErrPersistence, key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	s.data[key] = data
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, key string, v any, apply func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv.Elem().SetZero()
	}
	if err := s.get(key, v); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := apply(); err != nil {
		return err
	}
	return s.set(key, v)
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
