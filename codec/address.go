// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"errors"

	"github.com/ava-labs/avalanchego/ids"
)

const AddressLen = 33

// Address is the 33 byte identifier of a factory account: a type byte
// followed by a 32 byte digest. An Address is a value; it exists whether
// or not a wallet has been materialized at it.
type Address [AddressLen]byte

var (
	EmptyAddress = Address{}

	ErrBadAddressLength = errors.New("invalid address length")
)

// CreateAddress returns the [Address] made from concatenating
// [typeID] with [id].
func CreateAddress(typeID uint8, id ids.ID) Address {
	a := make([]byte, AddressLen)
	a[0] = typeID
	copy(a[1:], id[:])
	return Address(a)
}

// ToID returns the digest portion of [a].
func (a Address) ToID() ids.ID {
	return ids.ID(a[1:])
}

// StringToAddress parses a hex-encoded address with an optional 0x prefix.
func StringToAddress(s string) (Address, error) {
	var a Address
	if err := a.UnmarshalText([]byte(s)); err != nil {
		return EmptyAddress, err
	}
	return a, nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	result := make([]byte, len(a)*2+2)
	copy(result, `0x`)
	hex.Encode(result[2:], a[:])
	return result, nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	if len(input) >= 2 && input[0] == '0' && input[1] == 'x' {
		input = input[2:]
	}
	decoded, err := hex.DecodeString(string(input))
	if err != nil {
		return err
	}
	if len(decoded) != AddressLen {
		return ErrBadAddressLength
	}
	copy(a[:], decoded)
	return nil
}
