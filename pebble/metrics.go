// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	reads   prometheus.Counter
	writes  prometheus.Counter
	deletes prometheus.Counter
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	m := &metrics{
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "reads",
			Help:      "number of db gets",
		}),
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "writes",
			Help:      "number of db sets",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "deletes",
			Help:      "number of db deletes",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.reads),
		r.Register(m.writes),
		r.Register(m.deletes),
	)
	return r, m, errs.Err
}
