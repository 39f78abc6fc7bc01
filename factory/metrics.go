// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/avalanchego/utils/wrappers"
)

type metrics struct {
	accountsCreated prometheus.Counter
	createsExisting prometheus.Counter
	deposits        prometheus.Counter
	depositVolume   prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		accountsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "factory",
			Name:      "accounts_created",
			Help:      "number of accounts materialized",
		}),
		createsExisting: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "factory",
			Name:      "creates_existing",
			Help:      "number of createAccount calls resolved by an existing account",
		}),
		deposits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "factory",
			Name:      "deposits",
			Help:      "number of deposits registered",
		}),
		depositVolume: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "factory",
			Name:      "deposit_volume",
			Help:      "total value deposited",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.accountsCreated),
		r.Register(m.createsExisting),
		r.Register(m.deposits),
		r.Register(m.depositVolume),
	)
	return m, errs.Err
}
