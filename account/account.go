// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/craftforge/crafting/fault"
)

// miscellaneous constants
const (
	IdentitySize   = 32
	checksumLength = 4
)

// Identity - an opaque 32 byte ledger identity
//
// identifies callers, holders and mint authorities; the derived
// formula authority is an Identity with no corresponding private key
//
// text form is Base58 of the identity bytes followed by the first 4
// bytes of the SHA3-256 checksum of those bytes
type Identity [IdentitySize]byte

// IdentityFromBase58 - convert a Base58 encoded string to an identity
func IdentityFromBase58(s string) (Identity, error) {
	var identity Identity

	decoded, err := base58.Decode(s)
	if nil != err {
		return identity, fault.CannotDecodeIdentity
	}
	if IdentitySize+checksumLength != len(decoded) {
		return identity, fault.NotIdentity
	}

	checksum := sha3.Sum256(decoded[:IdentitySize])
	if !bytes.Equal(checksum[:checksumLength], decoded[IdentitySize:]) {
		return identity, fault.ChecksumMismatch
	}

	copy(identity[:], decoded[:IdentitySize])
	return identity, nil
}

// IdentityFromBytes - convert and validate a binary byte slice to an identity
func IdentityFromBytes(identity *Identity, buffer []byte) error {
	if IdentitySize != len(buffer) {
		return fault.NotIdentity
	}
	copy(identity[:], buffer)
	return nil
}

// String - convert an identity to its Base58 form for use by the fmt package (for %s)
func (identity Identity) String() string {
	checksum := sha3.Sum256(identity[:])
	buffer := make([]byte, 0, IdentitySize+checksumLength)
	buffer = append(buffer, identity[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - convert an identity to its Base58 form for use by the fmt package (for %#v)
func (identity Identity) GoString() string {
	return "<identity:" + identity.String() + ">"
}

// MarshalText - convert an identity to its Base58 text form
func (identity Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// UnmarshalText - convert a Base58 text form back to an identity
func (identity *Identity) UnmarshalText(s []byte) error {
	decoded, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	*identity = decoded
	return nil
}

// IsZero - true if the identity is all zero bytes
func (identity Identity) IsZero() bool {
	return identity == Identity{}
}
