// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Name    = "walletfactory"
	Version = "v0.0.1"

	// WalletTypeID is the address type byte for factory-derived accounts.
	WalletTypeID uint8 = 0x1

	ByteLen   = 1
	Uint64Len = 8
	MaxUint64 = ^uint64(0)
)
