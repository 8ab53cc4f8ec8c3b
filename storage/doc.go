// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - persistent store for registered formulas
//
// maintain a LevelDB database of packed formula records
//
// the pools are named by a single byte prefix added to every key so
// unrelated record kinds can share one database file:
//
//	Formulas  F  formula id -> packed formula record
//
// the database carries a version stamp; opening a newer version than
// the code understands is refused rather than silently migrated
package storage
