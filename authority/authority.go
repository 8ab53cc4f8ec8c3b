// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - the formula bound keyless authority
//
// Every formula controls its outputs through an identity that has no
// private key.  The identity is a pure function of a fixed domain
// tag, the formula id and a one byte salt, so anyone can recompute
// it, but the ledger only honours it as an authorizer when the caller
// proves the matching (id, salt) pair at call time.
package authority

import (
	"golang.org/x/crypto/sha3"

	"github.com/craftforge/crafting/account"
	"github.com/craftforge/crafting/fault"
	"github.com/craftforge/crafting/formularecord"
)

// domain separation tag, mixed into every derivation
const domainTag = "crafting"

// Derive - compute the derived authority for a formula
//
// SHA3-256 over domain tag || formula id || salt; deterministic for
// the formula's whole lifetime
func Derive(formulaId formularecord.FormulaId, salt uint8) account.Identity {
	buffer := make([]byte, 0, len(domainTag)+formularecord.FormulaIdLength+1)
	buffer = append(buffer, domainTag...)
	buffer = append(buffer, formulaId[:]...)
	buffer = append(buffer, salt)
	return account.Identity(sha3.Sum256(buffer))
}

// Verify - check a claimed authority against the canonical derivation
//
// the claimed identity and salt travel together in every register and
// craft request; a mismatch is a hard failure, never silently corrected
func Verify(claimed account.Identity, formulaId formularecord.FormulaId, salt uint8) error {
	if Derive(formulaId, salt) != claimed {
		return fault.AuthorityDerivationMismatch
	}
	return nil
}
