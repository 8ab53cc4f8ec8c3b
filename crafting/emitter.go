// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crafting

import (
	"github.com/craftforge/crafting/account"
	"github.com/craftforge/crafting/formularecord"
	"github.com/craftforge/crafting/ledger"
)

// emitter - one output item's emission strategy
type emitter interface {
	emit(lgr ledger.Ledger, authorizedBy account.Identity, target ledger.HoldingRef) error
}

// freshly minted units of a fungible asset type
type fungibleOutput struct {
	assetType ledger.AssetType
	amount    uint8
}

func (f fungibleOutput) emit(lgr ledger.Ledger, authorizedBy account.Identity, target ledger.HoldingRef) error {
	return lgr.Mint(f.assetType, uint64(f.amount), target, authorizedBy)
}

// the single instance released from its custody holding
type uniqueOutput struct {
	custody ledger.HoldingRef
}

func (u uniqueOutput) emit(lgr ledger.Ledger, authorizedBy account.Identity, target ledger.HoldingRef) error {
	return lgr.Transfer(u.custody, target, 1, authorizedBy)
}

func emitterFor(item formularecord.OutputItem) emitter {
	if item.IsUnique {
		return uniqueOutput{
			custody: item.Custody,
		}
	}
	return fungibleOutput{
		assetType: item.AssetType,
		amount:    item.Amount,
	}
}
