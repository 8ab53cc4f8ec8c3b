// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/craftforge/crafting/account"
	"github.com/craftforge/crafting/fault"
)

// per asset type bookkeeping
type assetTypeData struct {
	mintAuthority account.Identity
	supply        uint64
}

// per holding account bookkeeping
type holdingData struct {
	assetType AssetType
	balance   uint64
	authority account.Identity
}

// MemoryLedger - in-process reference implementation of Ledger
//
// a single mutex serialises all calls; concurrent crafts against the
// same custody account resolve to exactly one winner because the
// second transfer sees the already emptied balance
type MemoryLedger struct {
	sync.Mutex
	assetTypes map[AssetType]*assetTypeData
	holdings   map[HoldingRef]*holdingData
}

// NewMemoryLedger - create an empty ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		assetTypes: make(map[AssetType]*assetTypeData),
		holdings:   make(map[HoldingRef]*holdingData),
	}
}

// CreateAssetType - register an asset type with its initial mint authority
func (l *MemoryLedger) CreateAssetType(assetType AssetType, mintAuthority account.Identity) error {
	l.Lock()
	defer l.Unlock()

	if _, ok := l.assetTypes[assetType]; ok {
		return fault.LedgerDuplicateAssetType
	}
	l.assetTypes[assetType] = &assetTypeData{
		mintAuthority: mintAuthority,
	}
	return nil
}

// CreateHolding - open a zero balance holding account for an asset type
func (l *MemoryLedger) CreateHolding(holding HoldingRef, assetType AssetType, authority account.Identity) error {
	l.Lock()
	defer l.Unlock()

	if _, ok := l.assetTypes[assetType]; !ok {
		return fault.LedgerNoSuchAssetType
	}
	if _, ok := l.holdings[holding]; ok {
		return fault.LedgerDuplicateHolding
	}
	l.holdings[holding] = &holdingData{
		assetType: assetType,
		authority: authority,
	}
	return nil
}

// MintAuthorityOf - current mint authority of an asset type
func (l *MemoryLedger) MintAuthorityOf(assetType AssetType) (account.Identity, error) {
	l.Lock()
	defer l.Unlock()

	a, ok := l.assetTypes[assetType]
	if !ok {
		return account.Identity{}, fault.LedgerNoSuchAssetType
	}
	return a.mintAuthority, nil
}

// SupplyOf - total minted minus burned for an asset type
func (l *MemoryLedger) SupplyOf(assetType AssetType) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	a, ok := l.assetTypes[assetType]
	if !ok {
		return 0, fault.LedgerNoSuchAssetType
	}
	return a.supply, nil
}

// AssetTypeOf - recorded asset type of a holding account
func (l *MemoryLedger) AssetTypeOf(holding HoldingRef) (AssetType, error) {
	l.Lock()
	defer l.Unlock()

	h, ok := l.holdings[holding]
	if !ok {
		return AssetType{}, fault.LedgerNoSuchHolding
	}
	return h.assetType, nil
}

// BalanceOf - current balance of a holding account
func (l *MemoryLedger) BalanceOf(holding HoldingRef) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	h, ok := l.holdings[holding]
	if !ok {
		return 0, fault.LedgerNoSuchHolding
	}
	return h.balance, nil
}

// AuthorityOf - recorded authority of a holding account
func (l *MemoryLedger) AuthorityOf(holding HoldingRef) (account.Identity, error) {
	l.Lock()
	defer l.Unlock()

	h, ok := l.holdings[holding]
	if !ok {
		return account.Identity{}, fault.LedgerNoSuchHolding
	}
	return h.authority, nil
}

// Burn - destroy amount units from a holding account
func (l *MemoryLedger) Burn(holding HoldingRef, assetType AssetType, amount uint64, authorizedBy account.Identity) error {
	l.Lock()
	defer l.Unlock()

	h, ok := l.holdings[holding]
	if !ok {
		return fault.LedgerNoSuchHolding
	}
	if h.assetType != assetType {
		return fault.LedgerAssetTypeMismatch
	}
	if h.authority != authorizedBy {
		return fault.LedgerNotAuthorized
	}
	if h.balance < amount {
		return fault.LedgerInsufficientBalance
	}

	h.balance -= amount
	l.assetTypes[assetType].supply -= amount
	return nil
}

// Mint - issue amount new units into a holding account
func (l *MemoryLedger) Mint(assetType AssetType, amount uint64, to HoldingRef, authorizedBy account.Identity) error {
	l.Lock()
	defer l.Unlock()

	a, ok := l.assetTypes[assetType]
	if !ok {
		return fault.LedgerNoSuchAssetType
	}
	if a.mintAuthority != authorizedBy {
		return fault.LedgerNotAuthorized
	}

	h, ok := l.holdings[to]
	if !ok {
		return fault.LedgerNoSuchHolding
	}
	if h.assetType != assetType {
		return fault.LedgerAssetTypeMismatch
	}

	h.balance += amount
	a.supply += amount
	return nil
}

// Transfer - move amount units between holding accounts of the same asset type
func (l *MemoryLedger) Transfer(from HoldingRef, to HoldingRef, amount uint64, authorizedBy account.Identity) error {
	l.Lock()
	defer l.Unlock()

	src, ok := l.holdings[from]
	if !ok {
		return fault.LedgerNoSuchHolding
	}
	dst, ok := l.holdings[to]
	if !ok {
		return fault.LedgerNoSuchHolding
	}
	if src.assetType != dst.assetType {
		return fault.LedgerAssetTypeMismatch
	}
	if src.authority != authorizedBy {
		return fault.LedgerNotAuthorized
	}
	if src.balance < amount {
		return fault.LedgerInsufficientBalance
	}

	src.balance -= amount
	dst.balance += amount
	return nil
}

// ReassignMintAuthority - hand the mint authority of an asset type to a new identity
func (l *MemoryLedger) ReassignMintAuthority(assetType AssetType, newAuthority account.Identity, authorizedBy account.Identity) error {
	l.Lock()
	defer l.Unlock()

	a, ok := l.assetTypes[assetType]
	if !ok {
		return fault.LedgerNoSuchAssetType
	}
	if a.mintAuthority != authorizedBy {
		return fault.LedgerNotAuthorized
	}

	a.mintAuthority = newAuthority
	return nil
}
