// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package formularecord - the persisted recipe record
//
// A Formula is the declaration of required ingredients and resulting
// output items for one transformation.  It is created once by the
// registrar, is immutable for its whole lifetime (its id is the seed
// material of the derived authority) and is only ever read by the
// crafting engine.
//
// The packed binary layout uses fixed size entry slots so the stored
// record size is a pure function of the two entry counts and can be
// pre-declared at allocation time:
//
//	header:     varint tag + 2 count bytes    (3 bytes)
//	ingredient: asset type + amount + flags  (34 bytes each)
//	output:     asset type + amount + flags + custody ref
//	                                         (66 bytes each)
package formularecord
