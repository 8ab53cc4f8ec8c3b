// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package formularecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/formularecord"
	"github.com/craftforge/crafting/ledger"
)

func testAssetType(fill byte) ledger.AssetType {
	var assetType ledger.AssetType
	assetType[0] = fill
	return assetType
}

func testHolding(fill byte) ledger.HoldingRef {
	var holding ledger.HoldingRef
	holding[0] = fill
	return holding
}

func TestRecordSize(t *testing.T) {
	sizeTests := []struct {
		ingredients int
		outputs     int
		size        int
		err         error
	}{
		{0, 0, 3, nil},
		{1, 1, 3 + 34 + 66, nil},
		{2, 1, 3 + 68 + 66, nil},
		{127, 127, 3 + 127*34 + 127*66, nil},
		{128, 0, 0, fault.InvalidCount},
		{0, 128, 0, fault.InvalidCount},
		{-1, 0, 0, fault.InvalidCount},
	}

	for i, item := range sizeTests {
		size, err := formularecord.RecordSize(item.ingredients, item.outputs)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.size, size, "%d: wrong size", i)
	}
}

func TestPackUnpack(t *testing.T) {
	formula := &formularecord.Formula{
		Ingredients: []formularecord.Ingredient{
			{AssetType: testAssetType(0xa1), Amount: 3, BurnOnCraft: true},
			{AssetType: testAssetType(0xa2), Amount: 1, BurnOnCraft: false},
		},
		OutputItems: []formularecord.OutputItem{
			{AssetType: testAssetType(0xb1), Amount: 2},
			{AssetType: testAssetType(0xb2), Amount: 1, IsUnique: true, Custody: testHolding(0xc1)},
		},
	}

	packed, err := formula.Pack()
	require.Nil(t, err, "pack error")

	expectedSize, _ := formularecord.RecordSize(2, 2)
	assert.Equal(t, expectedSize, len(packed), "packed size disagrees with RecordSize")
	assert.Equal(t, formularecord.FormulaTag, packed.Type(), "wrong record tag")

	unpacked, n, err := packed.Unpack()
	require.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "wrong consumed byte count")
	assert.Equal(t, formula, unpacked, "unpacked formula differs")
}

func TestPackedLayout(t *testing.T) {
	formula := &formularecord.Formula{
		Ingredients: []formularecord.Ingredient{
			{AssetType: testAssetType(0xa1), Amount: 3, BurnOnCraft: true},
		},
		OutputItems: []formularecord.OutputItem{
			{AssetType: testAssetType(0xb1), Amount: 2},
		},
	}

	packed, err := formula.Pack()
	require.Nil(t, err, "pack error")

	expected := []byte{0x01, 0x01, 0x01} // tag, counts
	a := testAssetType(0xa1)
	expected = append(expected, a[:]...)
	expected = append(expected, 0x03, 0x01) // amount, burn flag
	b := testAssetType(0xb1)
	expected = append(expected, b[:]...)
	expected = append(expected, 0x02, 0x00)                           // amount, flags
	expected = append(expected, make([]byte, ledger.HoldingRefSize)...) // blank custody

	assert.Equal(t, expected, []byte(packed), "wrong packed layout")
}

func TestUnpackTrailingData(t *testing.T) {
	formula := &formularecord.Formula{
		Ingredients: []formularecord.Ingredient{
			{AssetType: testAssetType(0xa1), Amount: 1, BurnOnCraft: true},
		},
	}
	packed, err := formula.Pack()
	require.Nil(t, err, "pack error")

	withTrailer := append(append(formularecord.Packed{}, packed...), 0xde, 0xad)
	unpacked, n, err := withTrailer.Unpack()
	require.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "trailing bytes were consumed")
	assert.Equal(t, formula, unpacked, "unpacked formula differs")
}

func TestUnpackDamagedRecords(t *testing.T) {
	formula := &formularecord.Formula{
		Ingredients: []formularecord.Ingredient{
			{AssetType: testAssetType(0xa1), Amount: 3, BurnOnCraft: true},
		},
		OutputItems: []formularecord.OutputItem{
			{AssetType: testAssetType(0xb1), Amount: 2},
		},
	}
	packed, err := formula.Pack()
	require.Nil(t, err, "pack error")

	damagedTests := []struct {
		name   string
		record formularecord.Packed
	}{
		{"empty", formularecord.Packed{}},
		{"wrong tag", formularecord.Packed{0x7f, 0x01, 0x01}},
		{"missing counts", packed[:1]},
		{"truncated entry", packed[:len(packed)-1]},
		{"bad ingredient flags", damage(packed, 3+32+1, 0xf0)},
	}

	for _, item := range damagedTests {
		_, _, err := item.record.Unpack()
		assert.NotNil(t, err, "%s: unpacked without error", item.name)
	}
}

// copy the record and overwrite one byte
func damage(record formularecord.Packed, offset int, value byte) formularecord.Packed {
	damaged := append(formularecord.Packed{}, record...)
	damaged[offset] = value
	return damaged
}

func TestPackUniqueAmount(t *testing.T) {
	formula := &formularecord.Formula{
		OutputItems: []formularecord.OutputItem{
			{AssetType: testAssetType(0xb1), Amount: 2, IsUnique: true, Custody: testHolding(0xc1)},
		},
	}

	_, err := formula.Pack()
	assert.Equal(t, fault.AmountOutOfRange, err, "wrong error")
}

func TestPackTooManyEntries(t *testing.T) {
	formula := &formularecord.Formula{
		Ingredients: make([]formularecord.Ingredient, formularecord.MaxIngredients+1),
	}

	_, err := formula.Pack()
	assert.Equal(t, fault.InvalidCount, err, "wrong error")
}

func TestFormulaId(t *testing.T) {
	one := formularecord.NewFormulaId([]byte("seed one"))
	two := formularecord.NewFormulaId([]byte("seed two"))
	again := formularecord.NewFormulaId([]byte("seed one"))

	assert.Equal(t, one, again, "id derivation not deterministic")
	assert.NotEqual(t, one, two, "distinct seeds produced equal ids")

	text, err := one.MarshalText()
	require.Nil(t, err, "marshal error")

	var restored formularecord.FormulaId
	err = restored.UnmarshalText(text)
	require.Nil(t, err, "unmarshal error")
	assert.Equal(t, one, restored, "wrong restored id")

	err = restored.UnmarshalText([]byte("0011"))
	assert.Equal(t, fault.NotFormulaId, err, "wrong error for short text")
}
