// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	s := NewInMemoryStore()

	_, err := s.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(s.Insert(ctx, []byte("k"), []byte("v")))
	v, err := s.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)
	require.Equal(1, s.Len())

	require.NoError(s.Remove(ctx, []byte("k")))
	_, err = s.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestDatabaseStore(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	s := NewDatabaseStore(memdb.New())

	_, err := s.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(s.Insert(ctx, []byte("k"), []byte("v")))
	v, err := s.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)

	require.NoError(s.Remove(ctx, []byte("k")))
	_, err = s.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestSimpleMutableBuffersUntilCommit(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	inner := NewInMemoryStore()
	sm := NewSimpleMutable(inner)

	require.NoError(sm.Insert(ctx, []byte("k"), []byte("v")))

	// Visible through the buffer, not in the underlying store.
	v, err := sm.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)
	_, err = inner.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(sm.Commit(ctx))
	v, err = inner.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)
}

func TestSimpleMutableDiscard(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	inner := NewInMemoryStore()

	sm := NewSimpleMutable(inner)
	require.NoError(sm.Insert(ctx, []byte("k"), []byte("v")))
	// Dropped without commit: nothing applied.
	require.Equal(0, inner.Len())
}

func TestSimpleMutableRemove(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	inner := NewInMemoryStore()
	require.NoError(inner.Insert(ctx, []byte("k"), []byte("v")))

	sm := NewSimpleMutable(inner)
	require.NoError(sm.Remove(ctx, []byte("k")))
	_, err := sm.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(sm.Commit(ctx))
	_, err = inner.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
}
