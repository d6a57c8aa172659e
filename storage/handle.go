// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
)

// Handle - the store interface consumed by the registry and query layers
type Handle interface {
	Put(key []byte, value []byte)
	Delete(key []byte)
	Get(key []byte) []byte
	Has(key []byte) bool
	ScanRange(start []byte, end []byte) Iterator
	ScanPrefix(indexName string, attributes []string) (Iterator, error)
	ScanRangePaginated(start []byte, end []byte, pageSize int, bookmark string) (Iterator, *PageMeta, error)
	QueryBySelector(selector string) (Iterator, error)
	QueryBySelectorPaginated(selector string, pageSize int, bookmark string) (Iterator, *PageMeta, error)
	History(key []byte) Iterator
}

// PoolHandle - one key-prefixed table of the database
type PoolHandle struct {
	prefix    byte
	limit     []byte
	access    Access
	queryable bool
	history   *PoolHandle // non-nil when mutations are journalled
}

// PoolHandle must satisfy the store interface
var _ Handle = (*PoolHandle)(nil)

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.access {
		logger.Panic("pool.Put nil access")
		return
	}
	p.access.Put(p.prefixKey(key), value)
	if nil != p.history {
		p.history.appendHistory(key, value, false)
	}
}

// Delete - remove a key
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.access {
		logger.Panic("pool.Delete nil access")
		return
	}
	p.access.Delete(p.prefixKey(key))
	if nil != p.history {
		p.history.appendHistory(key, nil, true)
	}
}

// Get - read the value for a given key
//
// returns nil if the key is absent
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.access {
		return nil
	}
	value, err := p.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.access {
		return false
	}
	found, err := p.access.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return found
}
