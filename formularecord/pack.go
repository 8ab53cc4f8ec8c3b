// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package formularecord

import (
	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/util"
)

// record tag, encoded as Varint64 at the start of a packed record
const (
	// null marks beginning of list - not used as a record type
	NullTag = uint64(iota)

	// the only valid record type
	FormulaTag = uint64(iota)
)

// Packed - a packed formula record is just a byte slice
type Packed []byte

// ingredient flag bits
const (
	flagBurnOnCraft = byte(0x01)
)

// output item flag bits
const (
	flagIsUnique = byte(0x01)
)

// Pack formula
//
// Pack Varint64(tag) followed by one byte per entry count then the
// fixed size entry slots in declaration order
//
// the result length always equals RecordSize for the entry counts
func (formula *Formula) Pack() (Packed, error) {
	size, err := RecordSize(len(formula.Ingredients), len(formula.OutputItems))
	if nil != err {
		return nil, err
	}

	for _, item := range formula.OutputItems {
		if item.IsUnique {
			// the unique path always moves exactly one instance
			if 1 != item.Amount {
				return nil, fault.AmountOutOfRange
			}
		}
	}

	// concatenate bytes
	message := make(Packed, 0, size)
	message = append(message, util.ToVarint64(FormulaTag)...)
	message = append(message, byte(len(formula.Ingredients)))
	message = append(message, byte(len(formula.OutputItems)))

	for _, ingredient := range formula.Ingredients {
		message = append(message, ingredient.AssetType[:]...)
		message = append(message, ingredient.Amount)
		flags := byte(0)
		if ingredient.BurnOnCraft {
			flags |= flagBurnOnCraft
		}
		message = append(message, flags)
	}

	for _, item := range formula.OutputItems {
		message = append(message, item.AssetType[:]...)
		message = append(message, item.Amount)
		flags := byte(0)
		if item.IsUnique {
			flags |= flagIsUnique
		}
		message = append(message, flags)
		message = append(message, item.Custody[:]...)
	}

	return message, nil
}

// Type - returns the record tag code
func (record Packed) Type() uint64 {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return recordType
}
