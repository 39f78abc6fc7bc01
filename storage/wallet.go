// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/smartwallet-labs/walletfactory/codec"
	"github.com/smartwallet-labs/walletfactory/state"
)

const walletRecordLen = ids.IDLen + codec.AddressLen

// SetWallet stores the materialization record for [addr]: the
// implementation the account was deployed from and the owner it was
// initialized with.
func SetWallet(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	implementationID ids.ID,
	owner codec.Address,
) error {
	v := make([]byte, walletRecordLen)
	copy(v, implementationID[:])
	copy(v[ids.IDLen:], owner[:])
	return mu.Insert(ctx, WalletKey(addr), v)
}

// GetWallet returns the materialization record for [addr].
// A missing record is not an error: it means no wallet exists there yet.
func GetWallet(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (ids.ID, codec.Address, bool, error) {
	v, err := im.GetValue(ctx, WalletKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return ids.Empty, codec.EmptyAddress, false, nil
	}
	if err != nil {
		return ids.Empty, codec.EmptyAddress, false, err
	}
	if len(v) != walletRecordLen {
		return ids.Empty, codec.EmptyAddress, false, ErrInvalidWallet
	}
	var owner codec.Address
	copy(owner[:], v[ids.IDLen:])
	return ids.ID(v[:ids.IDLen]), owner, true, nil
}

// WalletExists reports whether a wallet has been materialized at [addr].
// This probe is the idempotency gate for account creation.
func WalletExists(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (bool, error) {
	_, _, exists, err := GetWallet(ctx, im, addr)
	return exists, err
}
