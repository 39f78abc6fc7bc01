// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/smartwallet-labs/walletfactory/codec"
	"github.com/smartwallet-labs/walletfactory/consts"
)

// State layout
// 0x0/ (wallet)
//   -> [address] => implementationID + owner
// 0x1/ (balance)
//   -> [address] => balance

const (
	walletPrefix  byte = 0x0
	balancePrefix byte = 0x1
)

// [walletPrefix] + [address]
func WalletKey(addr codec.Address) (k []byte) {
	k = make([]byte, consts.ByteLen+codec.AddressLen)
	k[0] = walletPrefix
	copy(k[1:], addr[:])
	return
}

// [balancePrefix] + [address]
func BalanceKey(addr codec.Address) (k []byte) {
	k = make([]byte, consts.ByteLen+codec.AddressLen)
	k[0] = balancePrefix
	copy(k[1:], addr[:])
	return
}
