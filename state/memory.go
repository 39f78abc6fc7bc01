// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"sync"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*InMemoryStore)(nil)

// InMemoryStore is a map-backed [Mutable] safe for concurrent use. It is
// used by tests and anywhere a throwaway state is needed.
type InMemoryStore struct {
	l       sync.RWMutex
	storage map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		storage: make(map[string][]byte),
	}
}

func (s *InMemoryStore) GetValue(_ context.Context, key []byte) ([]byte, error) {
	s.l.RLock()
	defer s.l.RUnlock()

	v, ok := s.storage[string(key)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return v, nil
}

func (s *InMemoryStore) Insert(_ context.Context, key []byte, value []byte) error {
	s.l.Lock()
	defer s.l.Unlock()

	s.storage[string(key)] = value
	return nil
}

func (s *InMemoryStore) Remove(_ context.Context, key []byte) error {
	s.l.Lock()
	defer s.l.Unlock()

	delete(s.storage, string(key))
	return nil
}

// Len returns the number of stored keys.
func (s *InMemoryStore) Len() int {
	s.l.RLock()
	defer s.l.RUnlock()

	return len(s.storage)
}
