// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
)

var _ Mutable = (*SimpleMutable)(nil)

// SimpleMutable buffers all writes over an underlying [Mutable] until
// [Commit] is called. If Commit is never invoked, the underlying state is
// untouched, which is how multi-step operations stay all-or-nothing.
type SimpleMutable struct {
	inner Mutable

	changes map[string]maybe.Maybe[[]byte]
}

func NewSimpleMutable(inner Mutable) *SimpleMutable {
	return &SimpleMutable{
		inner:   inner,
		changes: make(map[string]maybe.Maybe[[]byte]),
	}
}

func (s *SimpleMutable) GetValue(ctx context.Context, key []byte) ([]byte, error) {
	if v, ok := s.changes[string(key)]; ok {
		if v.IsNothing() {
			return nil, database.ErrNotFound
		}
		return v.Value(), nil
	}
	return s.inner.GetValue(ctx, key)
}

func (s *SimpleMutable) Insert(_ context.Context, key []byte, value []byte) error {
	s.changes[string(key)] = maybe.Some(value)
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, key []byte) error {
	s.changes[string(key)] = maybe.Nothing[[]byte]()
	return nil
}

// Commit flushes buffered changes to the underlying state.
func (s *SimpleMutable) Commit(ctx context.Context) error {
	for k, v := range s.changes {
		if v.IsNothing() {
			if err := s.inner.Remove(ctx, []byte(k)); err != nil {
				return err
			}
			continue
		}
		if err := s.inner.Insert(ctx, []byte(k), v.Value()); err != nil {
			return err
		}
	}
	s.changes = make(map[string]maybe.Maybe[[]byte])
	return nil
}
