// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crafting - the craft execution engine
//
// a craft run works through fixed phases and never mutates the ledger
// before every ingredient has been validated:
//
//	1. account list counts against the formula
//	2. claimed authority against the canonical derivation
//	3. every ingredient checked (asset type, balance, holder)
//	4. burn the consumable ingredients, crafter authorized
//	5. emit every output, derived authority authorized
//
// a validation failure in phases 1..3 therefore proves the ledger is
// untouched; a ledger failure in phases 4..5 surfaces as-is and the
// run stops at that point
package crafting
