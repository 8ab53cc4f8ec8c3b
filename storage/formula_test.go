// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/formularecord"
	"github.com/craftforge/crafting/ledger"
	"github.com/craftforge/crafting/storage"
)

func testFormula() *formularecord.Formula {
	var ingredientType, outputType ledger.AssetType
	ingredientType[0] = 0xa1
	outputType[0] = 0xb1

	return &formularecord.Formula{
		Ingredients: []formularecord.Ingredient{
			{AssetType: ingredientType, Amount: 2, BurnOnCraft: true},
		},
		OutputItems: []formularecord.OutputItem{
			{AssetType: outputType, Amount: 1},
		},
	}
}

func TestFormulaStoreUninitialised(t *testing.T) {
	_, err := storage.NewFormulaStore()
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}

func TestFormulaStoreRoundTrip(t *testing.T) {
	setup(t)
	defer teardown(t)

	store, err := storage.NewFormulaStore()
	require.Nil(t, err, "store error")

	formulaId := formularecord.NewFormulaId([]byte("round trip"))
	formula := testFormula()

	assert.False(t, store.Has(formulaId), "id present before put")

	_, err = store.Get(formulaId)
	assert.Equal(t, fault.FormulaNotFound, err, "wrong error for missing id")

	err = store.Put(formulaId, formula)
	require.Nil(t, err, "put error")

	assert.True(t, store.Has(formulaId), "id absent after put")

	fetched, err := store.Get(formulaId)
	require.Nil(t, err, "get error")
	assert.Equal(t, formula, fetched, "wrong formula")

	// second read is served from cache
	cached, err := store.Get(formulaId)
	require.Nil(t, err, "cached get error")
	assert.Equal(t, formula, cached, "wrong cached formula")
}

func TestFormulaStoreDuplicate(t *testing.T) {
	setup(t)
	defer teardown(t)

	store, err := storage.NewFormulaStore()
	require.Nil(t, err, "store error")

	formulaId := formularecord.NewFormulaId([]byte("duplicate"))

	err = store.Put(formulaId, testFormula())
	require.Nil(t, err, "put error")

	err = store.Put(formulaId, testFormula())
	assert.Equal(t, fault.AlreadyRegistered, err, "wrong error")
}

func TestFormulaStoreDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	store, err := storage.NewFormulaStore()
	require.Nil(t, err, "store error")

	formulaId := formularecord.NewFormulaId([]byte("deleted"))

	err = store.Put(formulaId, testFormula())
	require.Nil(t, err, "put error")

	store.Delete(formulaId)
	assert.False(t, store.Has(formulaId), "id present after delete")
}
