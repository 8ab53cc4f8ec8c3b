// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the asset ledger capability boundary
//
// The crafting engine never talks to a concrete ledger directly; it
// is handed a Ledger value at construction.  Balance storage,
// mint/burn/transfer primitives and authority bookkeeping all live on
// the other side of this interface.
//
// MemoryLedger is a complete in-process implementation used by the
// test suites and as a reference for the expected authorization
// semantics: every mutating call verifies its authorizedBy argument
// against the recorded authority before touching state.
package ledger
