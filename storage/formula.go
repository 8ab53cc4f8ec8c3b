// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/formularecord"
)

// FormulaStore - typed access to the formula pool
//
// a formula is write-once: a second Put for the same id is refused so
// a registered formula can never be silently redefined
type FormulaStore struct {
	pool *PoolHandle
}

// NewFormulaStore - bind a store to the initialised pool
func NewFormulaStore() (*FormulaStore, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, fault.NotInitialised
	}
	return &FormulaStore{
		pool: Pool.Formulas,
	}, nil
}

// Put - persist a newly registered formula
func (s *FormulaStore) Put(formulaId formularecord.FormulaId, formula *formularecord.Formula) error {
	if s.pool.Has(formulaId[:]) {
		return fault.AlreadyRegistered
	}

	packed, err := formula.Pack()
	if nil != err {
		return err
	}

	s.pool.Put(formulaId[:], packed)
	return nil
}

// Get - fetch a registered formula by id
func (s *FormulaStore) Get(formulaId formularecord.FormulaId) (*formularecord.Formula, error) {
	value := s.pool.Get(formulaId[:])
	if nil == value {
		return nil, fault.FormulaNotFound
	}

	formula, _, err := formularecord.Packed(value).Unpack()
	if nil != err {
		return nil, err
	}
	return formula, nil
}

// Has - check if a formula id is registered
func (s *FormulaStore) Has(formulaId formularecord.FormulaId) bool {
	return s.pool.Has(formulaId[:])
}

// Delete - remove a formula record
//
// administrative use only, registration never calls this
func (s *FormulaStore) Delete(formulaId formularecord.FormulaId) {
	s.pool.Delete(formulaId[:])
}
