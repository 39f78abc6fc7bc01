// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*DatabaseStore)(nil)

// DatabaseStore adapts a key-value database to [Mutable]. Missing keys
// surface as [database.ErrNotFound], matching the underlying database
// contract.
type DatabaseStore struct {
	db database.KeyValueReaderWriterDeleter
}

func NewDatabaseStore(db database.KeyValueReaderWriterDeleter) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return s.db.Get(key)
}

func (s *DatabaseStore) Insert(_ context.Context, key []byte, value []byte) error {
	return s.db.Put(key, value)
}

func (s *DatabaseStore) Remove(_ context.Context, key []byte) error {
	return s.db.Delete(key)
}
