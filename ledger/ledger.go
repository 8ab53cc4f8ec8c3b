// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"github.com/craftforge/crafting/account"
	"github.com/craftforge/crafting/fault"
)

// byte sizes of the reference types
const (
	AssetTypeSize  = 32
	HoldingRefSize = 32
)

// AssetType - identifier of an asset type (a mint in ledger terms)
// represented as hex text for JSON encoding
type AssetType [AssetTypeSize]byte

// HoldingRef - reference to a ledger holding account
// represented as hex text for JSON encoding
type HoldingRef [HoldingRefSize]byte

// Ledger - the capability interface to the external asset ledger
//
// read calls never mutate; mutating calls are authorized by the
// identity in their final parameter and the ledger is expected to
// reject a call whose authorizer does not match its own records
type Ledger interface {
	AssetTypeOf(holding HoldingRef) (AssetType, error)
	BalanceOf(holding HoldingRef) (uint64, error)
	AuthorityOf(holding HoldingRef) (account.Identity, error)

	Burn(holding HoldingRef, assetType AssetType, amount uint64, authorizedBy account.Identity) error
	Mint(assetType AssetType, amount uint64, to HoldingRef, authorizedBy account.Identity) error
	Transfer(from HoldingRef, to HoldingRef, amount uint64, authorizedBy account.Identity) error
	ReassignMintAuthority(assetType AssetType, newAuthority account.Identity, authorizedBy account.Identity) error
}

// AssetTypeFromBytes - convert and validate a binary byte slice to an asset type
func AssetTypeFromBytes(assetType *AssetType, buffer []byte) error {
	if AssetTypeSize != len(buffer) {
		return fault.NotAssetType
	}
	copy(assetType[:], buffer)
	return nil
}

// HoldingRefFromBytes - convert and validate a binary byte slice to a holding reference
func HoldingRefFromBytes(holding *HoldingRef, buffer []byte) error {
	if HoldingRefSize != len(buffer) {
		return fault.NotHoldingRef
	}
	copy(holding[:], buffer)
	return nil
}

// String - convert an asset type to hex text for use by the fmt package (for %s)
func (assetType AssetType) String() string {
	return hex.EncodeToString(assetType[:])
}

// GoString - convert an asset type to hex text for use by the fmt package (for %#v)
func (assetType AssetType) GoString() string {
	return "<asset:" + hex.EncodeToString(assetType[:]) + ">"
}

// MarshalText - convert an asset type to hex text
func (assetType AssetType) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(assetType))
	buffer := make([]byte, size)
	hex.Encode(buffer, assetType[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an asset type
func (assetType *AssetType) UnmarshalText(s []byte) error {
	if len(assetType) != hex.DecodedLen(len(s)) {
		return fault.NotAssetType
	}
	byteCount, err := hex.Decode(assetType[:], s)
	if nil != err {
		return err
	}
	if AssetTypeSize != byteCount {
		return fault.NotAssetType
	}
	return nil
}

// String - convert a holding reference to hex text for use by the fmt package (for %s)
func (holding HoldingRef) String() string {
	return hex.EncodeToString(holding[:])
}

// GoString - convert a holding reference to hex text for use by the fmt package (for %#v)
func (holding HoldingRef) GoString() string {
	return "<holding:" + hex.EncodeToString(holding[:]) + ">"
}

// MarshalText - convert a holding reference to hex text
func (holding HoldingRef) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(holding))
	buffer := make([]byte, size)
	hex.Encode(buffer, holding[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a holding reference
func (holding *HoldingRef) UnmarshalText(s []byte) error {
	if len(holding) != hex.DecodedLen(len(s)) {
		return fault.NotHoldingRef
	}
	byteCount, err := hex.Decode(holding[:], s)
	if nil != err {
		return err
	}
	if HoldingRefSize != byteCount {
		return fault.NotHoldingRef
	}
	return nil
}
