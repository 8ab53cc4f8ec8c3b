// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package formularecord

import (
	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/ledger"
	"github.com/craftforge/crafting/util"
)

// Unpack - turn a byte slice back into a formula
//
// also returns the number of bytes consumed; trailing data is left
// untouched so records can be concatenated in a stream
func (record Packed) Unpack() (formula *Formula, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotFormulaRecord
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n || FormulaTag != uint64(recordType) {
		return nil, 0, fault.NotFormulaRecord
	}

	if len(record) < n+2 {
		return nil, 0, fault.NotFormulaRecord
	}
	ingredientCount := int(record[n])
	outputCount := int(record[n+1])
	n += 2

	if ingredientCount > MaxIngredients || outputCount > MaxOutputItems {
		return nil, 0, fault.NotFormulaRecord
	}

	size, err := RecordSize(ingredientCount, outputCount)
	if nil != err {
		return nil, 0, err
	}
	if len(record) < size {
		return nil, 0, fault.NotFormulaRecord
	}

	formula = &Formula{
		Ingredients: make([]Ingredient, ingredientCount),
		OutputItems: make([]OutputItem, outputCount),
	}

	for i := 0; i < ingredientCount; i += 1 {
		ingredient := &formula.Ingredients[i]
		if err := ledger.AssetTypeFromBytes(&ingredient.AssetType, record[n:n+ledger.AssetTypeSize]); nil != err {
			return nil, 0, err
		}
		n += ledger.AssetTypeSize

		ingredient.Amount = record[n]
		n += 1

		flags := record[n]
		n += 1
		if 0 != flags&^flagBurnOnCraft {
			return nil, 0, fault.NotFormulaRecord
		}
		ingredient.BurnOnCraft = 0 != flags&flagBurnOnCraft
	}

	for i := 0; i < outputCount; i += 1 {
		item := &formula.OutputItems[i]
		if err := ledger.AssetTypeFromBytes(&item.AssetType, record[n:n+ledger.AssetTypeSize]); nil != err {
			return nil, 0, err
		}
		n += ledger.AssetTypeSize

		item.Amount = record[n]
		n += 1

		flags := record[n]
		n += 1
		if 0 != flags&^flagIsUnique {
			return nil, 0, fault.NotFormulaRecord
		}
		item.IsUnique = 0 != flags&flagIsUnique

		if err := ledger.HoldingRefFromBytes(&item.Custody, record[n:n+ledger.HoldingRefSize]); nil != err {
			return nil, 0, err
		}
		n += ledger.HoldingRefSize

		if item.IsUnique && 1 != item.Amount {
			return nil, 0, fault.AmountOutOfRange
		}
	}

	return formula, n, nil
}
