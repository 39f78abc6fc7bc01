// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/smartwallet-labs/walletfactory/codec"
)

type Factory interface {
	ComputeAddress(owner codec.Address, salt ids.ID) codec.Address
	CreateAccount(ctx context.Context, owner codec.Address, salt ids.ID) (codec.Address, bool, error)
	FundWallet(ctx context.Context, addr codec.Address, amount uint64) (uint64, error)
	Balance(ctx context.Context, addr codec.Address) (uint64, error)
}
