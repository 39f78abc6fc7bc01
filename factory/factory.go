// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/smartwallet-labs/walletfactory/codec"
	"github.com/smartwallet-labs/walletfactory/lockmap"
	"github.com/smartwallet-labs/walletfactory/state"
	"github.com/smartwallet-labs/walletfactory/storage"
	"github.com/smartwallet-labs/walletfactory/wallet"
)

const (
	factoryPrefix = "walletfactory.factory.v1"

	// factoryTypeID is distinct from consts.WalletTypeID so a factory
	// identity can never alias a derived account.
	factoryTypeID uint8 = 0x0

	initLocks = 64
)

// Factory derives deterministic account addresses, materializes accounts
// at them exactly once, and tracks a funding ledger keyed by address.
type Factory struct {
	log     logging.Logger
	metrics *metrics

	mu      state.Mutable
	impl    *wallet.Implementation
	runtime wallet.Runtime

	// addr is the factory's own identity, mixed into every derivation.
	addr codec.Address

	// locks serializes probe+materialize (and ledger read-modify-write)
	// per address.
	locks *lockmap.Lockmap
}

// New builds a factory bound to [entryPoint]. The implementation template
// is fixed at construction and immutable for the factory's lifetime.
func New(
	log logging.Logger,
	registry prometheus.Registerer,
	mu state.Mutable,
	entryPoint codec.Address,
	runtime wallet.Runtime,
) (*Factory, error) {
	m, err := newMetrics(registry)
	if err != nil {
		return nil, err
	}
	impl := wallet.NewImplementation(entryPoint)
	implID := impl.ID()

	h := sha256.New()
	h.Write([]byte(factoryPrefix))
	h.Write(implID[:])
	return &Factory{
		log:     log,
		metrics: m,
		mu:      mu,
		impl:    impl,
		runtime: runtime,
		addr:    codec.CreateAddress(factoryTypeID, ids.ID(h.Sum(nil))),
		locks:   lockmap.New(initLocks),
	}, nil
}

// Address is the factory's own identity.
func (f *Factory) Address() codec.Address {
	return f.addr
}

// Implementation is the fixed account template.
func (f *Factory) Implementation() *wallet.Implementation {
	return f.impl
}

// ComputeAddress returns the address an account for (owner, salt) has or
// would have. Pure and total: no state is read or written, and the result
// is identical before and after materialization.
func (f *Factory) ComputeAddress(owner codec.Address, salt ids.ID) codec.Address {
	return ComputeAddress(
		f.addr,
		f.impl.CreationBytecode(),
		f.impl.CreationData(owner),
		salt,
	)
}

// CreateAccount returns the address for (owner, salt), materializing and
// owner-initializing an account there if none exists. Get-or-create: a
// repeat call returns the same address with no new side effects. The
// returned bool reports whether this call performed the materialization.
//
// Materialization and initialization are staged in a buffer and committed
// together; if initialization fails, nothing durable is left behind and a
// retry behaves like a fresh call.
func (f *Factory) CreateAccount(ctx context.Context, owner codec.Address, salt ids.ID) (codec.Address, bool, error) {
	addr := f.ComputeAddress(owner, salt)

	f.locks.Lock(addr)
	defer f.locks.Unlock(addr)

	exists, err := storage.WalletExists(ctx, f.mu, addr)
	if err != nil {
		return codec.EmptyAddress, false, err
	}
	if exists {
		f.metrics.createsExisting.Inc()
		f.log.Debug("account already materialized",
			zap.Stringer("address", addr),
		)
		return addr, false, nil
	}

	sm := state.NewSimpleMutable(f.mu)
	if err := storage.SetWallet(ctx, sm, addr, f.impl.ID(), owner); err != nil {
		return codec.EmptyAddress, false, fmt.Errorf("%w: %w", ErrMaterializeFailed, err)
	}
	if err := f.runtime.Initialize(ctx, sm, addr, owner); err != nil {
		// Buffer is discarded; the account was never observably created.
		return codec.EmptyAddress, false, fmt.Errorf("%w: %w", ErrInitializeFailed, err)
	}
	if err := sm.Commit(ctx); err != nil {
		return codec.EmptyAddress, false, fmt.Errorf("%w: %w", ErrMaterializeFailed, err)
	}

	f.metrics.accountsCreated.Inc()
	f.log.Info("account materialized",
		zap.Stringer("address", addr),
		zap.Stringer("owner", owner),
		zap.Stringer("salt", salt),
	)
	return addr, true, nil
}

// FundWallet accumulates [amount] into the ledger entry for [addr]. The
// entry is created at zero on first deposit. The address does not need to
// denote a materialized account; pre-funding a predicted address is
// allowed.
func (f *Factory) FundWallet(ctx context.Context, addr codec.Address, amount uint64) (uint64, error) {
	f.locks.Lock(addr)
	defer f.locks.Unlock(addr)

	nbal, err := storage.AddBalance(ctx, f.mu, addr, amount)
	if err != nil {
		return 0, err
	}
	f.metrics.deposits.Inc()
	f.metrics.depositVolume.Add(float64(amount))
	f.log.Debug("deposit registered",
		zap.Stringer("address", addr),
		zap.Uint64("amount", amount),
		zap.Uint64("balance", nbal),
	)
	return nbal, nil
}

// Balance returns the accumulated balance for [addr], zero if it was
// never funded.
func (f *Factory) Balance(ctx context.Context, addr codec.Address) (uint64, error) {
	return storage.GetBalance(ctx, f.mu, addr)
}
