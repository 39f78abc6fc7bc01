// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/smartwallet-labs/walletfactory/codec"
	"github.com/smartwallet-labs/walletfactory/consts"
)

func TestComputeAddressDeterministic(t *testing.T) {
	require := require.New(t)
	factoryAddr := codec.CreateAddress(0, ids.GenerateTestID())
	bytecode := []byte("proxy-creation")
	creation := []byte("creation-args")
	salt := ids.GenerateTestID()

	a := ComputeAddress(factoryAddr, bytecode, creation, salt)
	b := ComputeAddress(factoryAddr, bytecode, creation, salt)
	require.Equal(a, b)
	require.Equal(consts.WalletTypeID, a[0])
}

func TestComputeAddressInputsMatter(t *testing.T) {
	require := require.New(t)
	factoryAddr := codec.CreateAddress(0, ids.GenerateTestID())
	bytecode := []byte("proxy-creation")
	creation := []byte("creation-args")
	salt := ids.GenerateTestID()

	base := ComputeAddress(factoryAddr, bytecode, creation, salt)
	require.NotEqual(base, ComputeAddress(factoryAddr, bytecode, creation, ids.GenerateTestID()))
	require.NotEqual(base, ComputeAddress(factoryAddr, bytecode, []byte("other-args"), salt))
	require.NotEqual(base, ComputeAddress(factoryAddr, []byte("other-proxy"), creation, salt))
	require.NotEqual(base, ComputeAddress(codec.CreateAddress(0, ids.GenerateTestID()), bytecode, creation, salt))
}

func TestComputeAddressNoCollisions(t *testing.T) {
	require := require.New(t)
	factoryAddr := codec.CreateAddress(0, ids.GenerateTestID())
	bytecode := []byte("proxy-creation")

	const samples = 2_000
	seen := make(map[codec.Address]struct{}, samples*2)
	for i := 0; i < samples; i++ {
		owner := codec.CreateAddress(consts.WalletTypeID, ids.GenerateTestID())
		for _, salt := range []ids.ID{ids.Empty, ids.GenerateTestID()} {
			addr := ComputeAddress(factoryAddr, bytecode, owner[:], salt)
			_, ok := seen[addr]
			require.False(ok)
			seen[addr] = struct{}{}
		}
	}
}
