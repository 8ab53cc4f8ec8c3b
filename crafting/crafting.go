// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crafting

import (
	"github.com/bitmark-inc/logger"

	"github.com/craftforge/crafting/account"
	"github.com/craftforge/crafting/authority"
	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/formularecord"
	"github.com/craftforge/crafting/ledger"
)

// Engine - the craft execution engine
type Engine struct {
	log    *logger.L
	ledger ledger.Ledger
}

// CraftRequest - one craft run against a registered formula
//
// the account lists are positional: the n'th ingredient account backs
// the n'th formula ingredient and likewise for outputs
type CraftRequest struct {
	Formula            *formularecord.Formula
	FormulaId          formularecord.FormulaId
	Crafter            account.Identity
	IngredientAccounts []ledger.HoldingRef
	OutputAccounts     []ledger.HoldingRef
	Authority          account.Identity // claimed derived authority
	Salt               uint8
}

// New - create an engine bound to a ledger
func New(lgr ledger.Ledger) (*Engine, error) {
	if nil == lgr {
		return nil, fault.InvalidNilCollaborator
	}
	return &Engine{
		log:    logger.New("crafting"),
		ledger: lgr,
	}, nil
}

// Craft - execute one craft run
//
// the ledger is only touched after every ingredient has passed
// validation, so any error other than a burn or emission failure
// proves no balance changed
func (e *Engine) Craft(req CraftRequest) error {
	if nil == req.Formula {
		return fault.FormulaNotFound
	}
	formula := req.Formula

	if len(req.IngredientAccounts) != len(formula.Ingredients) {
		return fault.AccountCountMismatch
	}
	if len(req.OutputAccounts) != len(formula.OutputItems) {
		return fault.AccountCountMismatch
	}

	err := authority.Verify(req.Authority, req.FormulaId, req.Salt)
	if nil != err {
		return err
	}

	// validate every ingredient before any burn
	for i, ingredient := range formula.Ingredients {
		err = e.validateIngredient(ingredient, req.IngredientAccounts[i], req.Crafter)
		if nil != err {
			e.log.Warnf("craft: %s ingredient %d: %s", req.FormulaId, i, err)
			return err
		}
	}

	// burn phase: only the consumable ingredients
	for i, ingredient := range formula.Ingredients {
		if !ingredient.BurnOnCraft {
			continue
		}
		err = e.ledger.Burn(req.IngredientAccounts[i], ingredient.AssetType, uint64(ingredient.Amount), req.Crafter)
		if nil != err {
			e.log.Errorf("craft: %s burn %d: %s", req.FormulaId, i, err)
			return err
		}
	}

	// emission phase: derived authority authorizes every output
	for i, item := range formula.OutputItems {
		err = emitterFor(item).emit(e.ledger, req.Authority, req.OutputAccounts[i])
		if nil != err {
			e.log.Errorf("craft: %s output %d: %s", req.FormulaId, i, err)
			return err
		}
	}

	e.log.Infof("crafted: %s by: %s", req.FormulaId, req.Crafter)
	return nil
}

// check one ingredient account against its formula entry
//
// order matters: asset type, then balance, then holder
func (e *Engine) validateIngredient(ingredient formularecord.Ingredient, holding ledger.HoldingRef, crafter account.Identity) error {

	assetType, err := e.ledger.AssetTypeOf(holding)
	if nil != err {
		return err
	}
	if assetType != ingredient.AssetType {
		return fault.InvalidAssetType
	}

	balance, err := e.ledger.BalanceOf(holding)
	if nil != err {
		return err
	}
	if balance < uint64(ingredient.Amount) {
		return fault.InsufficientAmount
	}

	holder, err := e.ledger.AuthorityOf(holding)
	if nil != err {
		return err
	}
	if holder != crafter {
		return fault.UnauthorizedHolder
	}

	return nil
}
