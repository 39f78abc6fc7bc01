// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/smartwallet-labs/walletfactory/codec"
	"github.com/smartwallet-labs/walletfactory/consts"
	"github.com/smartwallet-labs/walletfactory/state"
)

func TestBalanceDefaultZero(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := state.NewInMemoryStore()
	addr := codec.CreateAddress(consts.WalletTypeID, ids.GenerateTestID())

	bal, err := GetBalance(ctx, store, addr)
	require.NoError(err)
	require.Zero(bal)
}

func TestAddBalanceAccumulates(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := state.NewInMemoryStore()
	addr := codec.CreateAddress(consts.WalletTypeID, ids.GenerateTestID())

	nbal, err := AddBalance(ctx, store, addr, 5)
	require.NoError(err)
	require.Equal(uint64(5), nbal)

	nbal, err = AddBalance(ctx, store, addr, 3)
	require.NoError(err)
	require.Equal(uint64(8), nbal)

	bal, err := GetBalance(ctx, store, addr)
	require.NoError(err)
	require.Equal(uint64(8), bal)
}

func TestAddBalanceOverflow(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := state.NewInMemoryStore()
	addr := codec.CreateAddress(consts.WalletTypeID, ids.GenerateTestID())

	require.NoError(SetBalance(ctx, store, addr, consts.MaxUint64))
	_, err := AddBalance(ctx, store, addr, 1)
	require.ErrorIs(err, ErrInvalidBalance)

	// Entry is untouched after the failed add.
	bal, err := GetBalance(ctx, store, addr)
	require.NoError(err)
	require.Equal(consts.MaxUint64, bal)
}

func TestWalletRecordRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := state.NewInMemoryStore()
	addr := codec.CreateAddress(consts.WalletTypeID, ids.GenerateTestID())
	implementationID := ids.GenerateTestID()
	owner := codec.CreateAddress(consts.WalletTypeID, ids.GenerateTestID())

	exists, err := WalletExists(ctx, store, addr)
	require.NoError(err)
	require.False(exists)

	require.NoError(SetWallet(ctx, store, addr, implementationID, owner))

	gotImpl, gotOwner, exists, err := GetWallet(ctx, store, addr)
	require.NoError(err)
	require.True(exists)
	require.Equal(implementationID, gotImpl)
	require.Equal(owner, gotOwner)
}

func TestWalletRecordCorrupt(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := state.NewInMemoryStore()
	addr := codec.CreateAddress(consts.WalletTypeID, ids.GenerateTestID())

	require.NoError(store.Insert(ctx, WalletKey(addr), []byte("junk")))
	_, _, _, err := GetWallet(ctx, store, addr)
	require.ErrorIs(err, ErrInvalidWallet)
}

func TestKeyPrefixesDisjoint(t *testing.T) {
	require := require.New(t)
	addr := codec.CreateAddress(consts.WalletTypeID, ids.GenerateTestID())
	require.NotEqual(WalletKey(addr), BalanceKey(addr))
}
