// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/ledger"
)

func TestAssetTypeFromBytes(t *testing.T) {
	buffer := make([]byte, ledger.AssetTypeSize)
	buffer[0] = 0x5c

	var assetType ledger.AssetType
	err := ledger.AssetTypeFromBytes(&assetType, buffer)
	assert.Nil(t, err, "convert error")
	assert.Equal(t, byte(0x5c), assetType[0], "wrong first byte")

	err = ledger.AssetTypeFromBytes(&assetType, buffer[:10])
	assert.Equal(t, fault.NotAssetType, err, "wrong error for short buffer")
}

func TestHoldingRefFromBytes(t *testing.T) {
	buffer := make([]byte, ledger.HoldingRefSize+1)

	var holding ledger.HoldingRef
	err := ledger.HoldingRefFromBytes(&holding, buffer)
	assert.Equal(t, fault.NotHoldingRef, err, "wrong error for long buffer")

	err = ledger.HoldingRefFromBytes(&holding, buffer[:ledger.HoldingRefSize])
	assert.Nil(t, err, "convert error")
}

func TestReferenceFormatting(t *testing.T) {
	var assetType ledger.AssetType
	assetType[0] = 0xab

	s := fmt.Sprintf("%s", assetType)
	assert.Equal(t, 2*ledger.AssetTypeSize, len(s), "wrong hex length")
	assert.Equal(t, "ab", s[:2], "wrong leading bytes")

	g := fmt.Sprintf("%#v", assetType)
	assert.Contains(t, g, "<asset:", "wrong go string")

	var holding ledger.HoldingRef
	holding[0] = 0xcd
	assert.Contains(t, fmt.Sprintf("%#v", holding), "<holding:", "wrong go string")
}
