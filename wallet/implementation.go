// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"crypto/sha256"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/smartwallet-labs/walletfactory/codec"
)

// proxyTag prefixes the proxy-creation bytes so an implementation
// fingerprint can never collide with a raw entry point address.
const proxyTag = "walletfactory.proxy.v1"

// initSelector identifies the one-time owner-initialization entry point
// inside an initialization call payload.
const initSelector byte = 0x01

// Implementation is the fixed account template the factory deploys from.
// It is parameterized once by the entry point collaborator and immutable
// thereafter; every account the factory creates shares it.
type Implementation struct {
	id       ids.ID
	creation []byte
}

// NewImplementation binds the template to [entryPoint].
func NewImplementation(entryPoint codec.Address) *Implementation {
	creation := make([]byte, len(proxyTag)+codec.AddressLen)
	copy(creation, proxyTag)
	copy(creation[len(proxyTag):], entryPoint[:])
	return &Implementation{
		id:       ids.ID(sha256.Sum256(creation)),
		creation: creation,
	}
}

// ID is the fingerprint of the template's proxy-creation bytes.
func (i *Implementation) ID() ids.ID {
	return i.id
}

// CreationBytecode returns a copy of the proxy-creation bytes.
func (i *Implementation) CreationBytecode() []byte {
	b := make([]byte, len(i.creation))
	copy(b, i.creation)
	return b
}

// InitCall builds the owner-initialization payload: the initialization
// selector followed by the sole argument, the owner identity. The owner
// is not validated; a degenerate (all-zero) owner encodes like any other.
func (*Implementation) InitCall(owner codec.Address) []byte {
	b := make([]byte, 1+codec.AddressLen)
	b[0] = initSelector
	copy(b[1:], owner[:])
	return b
}

// CreationData builds the constructor arguments for a deployment of this
// template: the implementation reference followed by the owner-bound
// initialization payload.
func (i *Implementation) CreationData(owner codec.Address) []byte {
	initCall := i.InitCall(owner)
	b := make([]byte, ids.IDLen+len(initCall))
	copy(b, i.id[:])
	copy(b[ids.IDLen:], initCall)
	return b
}
