// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

const (
	defaultExpiration = 2 * time.Minute
	cleanupInterval   = 1 * time.Minute
)

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix   byte
	database *leveldb.DB
	cache    *gocache.Cache
}

func newCache() *gocache.Cache {
	return gocache.New(defaultExpiration, cleanupInterval)
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	err := p.database.Put(p.prefixKey(key), value, nil)
	logger.PanicIfError("storage", err)
	p.cache.Set(string(key), append([]byte{}, value...), gocache.DefaultExpiration)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	err := p.database.Delete(p.prefixKey(key), nil)
	logger.PanicIfError("storage", err)
	p.cache.Delete(string(key))
}

// Get - read a value for a given key
//
// this returns the cached copy when one is present to avoid a disk
// read on the hot path; a miss falls through to the database
//
// returns nil if the key does not exist
func (p *PoolHandle) Get(key []byte) []byte {
	if cached, found := p.cache.Get(string(key)); found {
		return append([]byte{}, cached.([]byte)...)
	}

	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("storage", err)

	p.cache.Set(string(key), append([]byte{}, value...), gocache.DefaultExpiration)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	if _, found := p.cache.Get(string(key)); found {
		return true
	}
	value, err := p.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("storage", err)
	return value
}
