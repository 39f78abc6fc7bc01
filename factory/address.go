// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"crypto/sha256"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/smartwallet-labs/walletfactory/codec"
	"github.com/smartwallet-labs/walletfactory/consts"
)

// createPrefix domain-separates account derivation from every other use
// of sha256 in the system.
const createPrefix = "walletfactory.create.v1"

// ComputeAddress derives the account address for a deployment of
// [creationBytecode] with [creationData] under [salt], namespaced to the
// deploying [factory]. It is pure: same inputs, same address, whether or
// not anything has been materialized there.
func ComputeAddress(
	factory codec.Address,
	creationBytecode []byte,
	creationData []byte,
	salt ids.ID,
) codec.Address {
	fingerprint := deployFingerprint(creationBytecode, creationData)
	h := sha256.New()
	h.Write([]byte(createPrefix))
	h.Write(factory[:])
	h.Write(salt[:])
	h.Write(fingerprint[:])
	return codec.CreateAddress(consts.WalletTypeID, ids.ID(h.Sum(nil)))
}

// deployFingerprint hashes the proxy-creation bytes concatenated with the
// constructor arguments, the same inputs a deployment consumes. Deriving
// and deploying from one fingerprint is what makes the materialized
// address equal the predicted one by construction.
func deployFingerprint(creationBytecode []byte, creationData []byte) ids.ID {
	h := sha256.New()
	h.Write(creationBytecode)
	h.Write(creationData)
	return ids.ID(h.Sum(nil))
}
