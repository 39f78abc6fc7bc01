// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"context"
	"errors"
	"sync"

	"github.com/smartwallet-labs/walletfactory/codec"
	"github.com/smartwallet-labs/walletfactory/state"
)

// Runtime performs the one-time owner initialization on a freshly
// materialized account. Implementations may write account-local state
// through [mu]; an error aborts the whole creation.
type Runtime interface {
	Initialize(ctx context.Context, mu state.Mutable, addr codec.Address, owner codec.Address) error
}

var (
	_ Runtime = (*CountingRuntime)(nil)
	_ Runtime = (*FailingRuntime)(nil)
)

// CountingRuntime is the reference [Runtime]. It records how many times
// each address was initialized, which lets callers observe whether a
// creation actually ran.
type CountingRuntime struct {
	l sync.Mutex

	inits  map[codec.Address]int
	owners map[codec.Address]codec.Address
}

func NewCountingRuntime() *CountingRuntime {
	return &CountingRuntime{
		inits:  make(map[codec.Address]int),
		owners: make(map[codec.Address]codec.Address),
	}
}

func (r *CountingRuntime) Initialize(_ context.Context, _ state.Mutable, addr codec.Address, owner codec.Address) error {
	r.l.Lock()
	defer r.l.Unlock()

	r.inits[addr]++
	r.owners[addr] = owner
	return nil
}

// Initializations returns how many times [addr] was initialized.
func (r *CountingRuntime) Initializations(addr codec.Address) int {
	r.l.Lock()
	defer r.l.Unlock()

	return r.inits[addr]
}

// Owner returns the owner [addr] was initialized with.
func (r *CountingRuntime) Owner(addr codec.Address) (codec.Address, bool) {
	r.l.Lock()
	defer r.l.Unlock()

	owner, ok := r.owners[addr]
	return owner, ok
}

// ErrInitRejected is returned by [FailingRuntime] for every call.
var ErrInitRejected = errors.New("initialization rejected")

// FailingRuntime rejects every initialization. Tests use it to prove that
// a failed initialization leaves no durable state behind.
type FailingRuntime struct{}

func (*FailingRuntime) Initialize(context.Context, state.Mutable, codec.Address, codec.Address) error {
	return ErrInitRejected
}
