// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registrar - formula registration
//
// registering a formula hands control of every output to the formula's
// derived authority before the record is persisted:
//
//	fungible output  ->  mint authority reassigned to the derived authority
//	unique output    ->  the single instance moved into a custody holding
//	                     already controlled by the derived authority
//
// the record is only written after the handoff succeeds, so a stored
// formula always refers to outputs the derived authority can emit
package registrar

import (
	"github.com/bitmark-inc/logger"

	"github.com/craftforge/crafting/account"
	"github.com/craftforge/crafting/authority"
	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/formularecord"
	"github.com/craftforge/crafting/ledger"
	"github.com/craftforge/crafting/storage"
)

// Registrar - the formula registration front end
type Registrar struct {
	log    *logger.L
	ledger ledger.Ledger
	store  *storage.FormulaStore
}

// UniqueSource - the account pair staged for one unique output
//
// positional: the n'th pair belongs to the n'th unique output item
type UniqueSource struct {
	Source  ledger.HoldingRef // currently holds the single instance
	Custody ledger.HoldingRef // held by the derived authority
}

// RegisterRequest - everything needed to register one formula
type RegisterRequest struct {
	FormulaId   formularecord.FormulaId
	Caller      account.Identity // current holder / mint authority
	Ingredients []formularecord.Ingredient
	Outputs     []formularecord.OutputItem // custody fields blank, filled here
	Unique      []UniqueSource             // one entry per unique output
	Authority   account.Identity           // claimed derived authority
	Salt        uint8
}

// New - create a registrar bound to a ledger and a formula store
func New(lgr ledger.Ledger, store *storage.FormulaStore) (*Registrar, error) {
	if nil == lgr || nil == store {
		return nil, fault.InvalidNilCollaborator
	}
	return &Registrar{
		log:    logger.New("registrar"),
		ledger: lgr,
		store:  store,
	}, nil
}

// Register - validate, hand off output control and persist one formula
//
// ledger mutations happen per output in declaration order; a failure
// part way through leaves earlier handoffs in place and the formula
// unregistered, so the caller must treat a failed registration as
// requiring manual cleanup of any already reassigned outputs
func (r *Registrar) Register(req RegisterRequest) (formularecord.FormulaId, *formularecord.Formula, error) {
	formulaId := req.FormulaId

	err := authority.Verify(req.Authority, formulaId, req.Salt)
	if nil != err {
		return formulaId, nil, err
	}

	formula := &formularecord.Formula{
		Ingredients: req.Ingredients,
		OutputItems: append([]formularecord.OutputItem{}, req.Outputs...),
	}

	// validate counts and amounts up front, before any ledger mutation
	_, err = formula.Pack()
	if nil != err {
		return formulaId, nil, err
	}

	uniqueCount := 0
	for _, item := range formula.OutputItems {
		if item.IsUnique {
			uniqueCount += 1
		}
	}
	if uniqueCount != len(req.Unique) {
		return formulaId, nil, fault.AccountCountMismatch
	}

	if r.store.Has(formulaId) {
		return formulaId, nil, fault.AlreadyRegistered
	}

	uniqueIndex := 0
	for i := range formula.OutputItems {
		item := &formula.OutputItems[i]

		if item.IsUnique {
			err = r.stageUnique(item, req.Unique[uniqueIndex], req.Authority, req.Caller)
			uniqueIndex += 1
		} else {
			err = r.ledger.ReassignMintAuthority(item.AssetType, req.Authority, req.Caller)
		}
		if nil != err {
			r.log.Errorf("register: %s output %d: %s", formulaId, i, err)
			return formulaId, nil, err
		}
	}

	err = r.store.Put(formulaId, formula)
	if nil != err {
		return formulaId, nil, err
	}

	r.log.Infof("registered: %s ingredients: %d outputs: %d", formulaId, len(formula.Ingredients), len(formula.OutputItems))
	return formulaId, formula, nil
}

// move the single instance of a unique output into custody and record
// the custody holding in the output item
func (r *Registrar) stageUnique(item *formularecord.OutputItem, source UniqueSource, derived account.Identity, caller account.Identity) error {

	var zero ledger.HoldingRef
	if zero == source.Source {
		return fault.MissingUniqueSource
	}
	if zero == source.Custody {
		return fault.MissingCustodyAccount
	}

	custodian, err := r.ledger.AuthorityOf(source.Custody)
	if nil != err {
		return err
	}
	if custodian != derived {
		return fault.CustodyNotHeldByAuthority
	}

	custodyType, err := r.ledger.AssetTypeOf(source.Custody)
	if nil != err {
		return err
	}
	if custodyType != item.AssetType {
		return fault.InvalidAssetType
	}

	sourceType, err := r.ledger.AssetTypeOf(source.Source)
	if nil != err {
		return err
	}
	if sourceType != item.AssetType {
		return fault.InvalidAssetType
	}

	balance, err := r.ledger.BalanceOf(source.Source)
	if nil != err {
		return err
	}
	if balance < 1 {
		return fault.InsufficientAmount
	}

	err = r.ledger.Transfer(source.Source, source.Custody, 1, caller)
	if nil != err {
		return err
	}

	item.Custody = source.Custody
	return nil
}

// Formula - fetch a registered formula
func (r *Registrar) Formula(formulaId formularecord.FormulaId) (*formularecord.Formula, error) {
	return r.store.Get(formulaId)
}

// Has - check whether a formula id is registered
func (r *Registrar) Has(formulaId formularecord.FormulaId) bool {
	return r.store.Has(formulaId)
}
