// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

var _ database.KeyValueReaderWriterDeleter = (*Database)(nil)

type Config struct {
	CacheSize int // bytes
	Sync      bool
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize: 64 * 1024 * 1024,
		Sync:      false,
	}
}

// Database is a thin wrapper over cockroachdb/pebble that speaks the
// avalanchego database error contract (missing keys surface as
// [database.ErrNotFound]).
type Database struct {
	db      *pebble.DB
	metrics *metrics
	wo      *pebble.WriteOptions
}

func New(dir string, cfg Config) (*Database, *prometheus.Registry, error) {
	registry, m, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}

	opts := &pebble.Options{
		Cache: pebble.NewCache(int64(cfg.CacheSize)),
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, nil, err
	}

	wo := pebble.NoSync
	if cfg.Sync {
		wo = pebble.Sync
	}
	return &Database{db: db, metrics: m, wo: wo}, registry, nil
}

func (d *Database) Has(key []byte) (bool, error) {
	_, err := d.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *Database) Get(key []byte) ([]byte, error) {
	d.metrics.reads.Inc()
	v, closer, err := d.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// [v] is only valid until the closer is released.
	out := make([]byte, len(v))
	copy(out, v)
	return out, closer.Close()
}

func (d *Database) Put(key []byte, value []byte) error {
	d.metrics.writes.Inc()
	return d.db.Set(key, value, d.wo)
}

func (d *Database) Delete(key []byte) error {
	d.metrics.deletes.Inc()
	return d.db.Delete(key, d.wo)
}

func (d *Database) Close() error {
	return d.db.Close()
}
