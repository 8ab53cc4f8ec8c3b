// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package formularecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/ledger"
)

// limits
const (
	FormulaIdLength = 32

	// single byte count slots in the packed record
	MaxIngredients = 127
	MaxOutputItems = 127
)

// byte cost of one packed entry
const (
	ingredientSlotSize = ledger.AssetTypeSize + 1 + 1
	outputSlotSize     = ledger.AssetTypeSize + 1 + 1 + ledger.HoldingRefSize
	headerSize         = 3 // varint tag + ingredient count + output count
)

// FormulaId - storage identity of a formula
//
// seed material for the derived authority, so it can never change
// once the formula exists
type FormulaId [FormulaIdLength]byte

// Ingredient - one required input asset
type Ingredient struct {
	AssetType   ledger.AssetType `json:"assetType"`   // ledger asset type id
	Amount      uint8            `json:"amount"`      // required quantity 0..255
	BurnOnCraft bool             `json:"burnOnCraft"` // destroy the quantity when crafting
}

// OutputItem - one produced asset
//
// fungible outputs are minted; unique outputs are transferred out of
// the custody account recorded at registration time
type OutputItem struct {
	AssetType ledger.AssetType  `json:"assetType"` // ledger asset type id
	Amount    uint8             `json:"amount"`    // quantity to mint; always 1 for unique
	IsUnique  bool              `json:"isUnique"`  // selects the custody transfer path
	Custody   ledger.HoldingRef `json:"custody"`   // unique only: set by the registrar
}

// Formula - the unpacked recipe
type Formula struct {
	Ingredients []Ingredient `json:"ingredients"`
	OutputItems []OutputItem `json:"outputItems"`
}

// NewFormulaId - derive a formula id from caller supplied seed bytes
//
// SHA3-256 hash
func NewFormulaId(seed []byte) FormulaId {
	return FormulaId(sha3.Sum256(seed))
}

// FormulaIdFromBytes - convert and validate a binary byte slice to a formula id
func FormulaIdFromBytes(formulaId *FormulaId, buffer []byte) error {
	if FormulaIdLength != len(buffer) {
		return fault.NotFormulaId
	}
	copy(formulaId[:], buffer)
	return nil
}

// RecordSize - the exact packed byte size for the given entry counts
//
// callers must pre-declare counts at allocation time since the stored
// record cannot grow afterwards
func RecordSize(ingredientCount int, outputCount int) (int, error) {
	if ingredientCount < 0 || ingredientCount > MaxIngredients {
		return 0, fault.InvalidCount
	}
	if outputCount < 0 || outputCount > MaxOutputItems {
		return 0, fault.InvalidCount
	}
	return headerSize + ingredientSlotSize*ingredientCount + outputSlotSize*outputCount, nil
}

// String - convert a formula id to hex text for use by the fmt package (for %s)
func (formulaId FormulaId) String() string {
	return hex.EncodeToString(formulaId[:])
}

// GoString - convert a formula id to hex text for use by the fmt package (for %#v)
func (formulaId FormulaId) GoString() string {
	return "<formula:" + hex.EncodeToString(formulaId[:]) + ">"
}

// MarshalText - convert a formula id to hex text
func (formulaId FormulaId) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(formulaId))
	buffer := make([]byte, size)
	hex.Encode(buffer, formulaId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a formula id
func (formulaId *FormulaId) UnmarshalText(s []byte) error {
	if len(formulaId) != hex.DecodedLen(len(s)) {
		return fault.NotFormulaId
	}
	byteCount, err := hex.Decode(formulaId[:], s)
	if nil != err {
		return err
	}
	if FormulaIdLength != byteCount {
		return fault.NotFormulaId
	}
	return nil
}
