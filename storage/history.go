// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// HistoryEntry - one past mutation of a primary key
//
// Value is the bytes written by the mutation; empty for a delete.
// Entries are reported oldest-to-newest.
type HistoryEntry struct {
	TxId      string    `json:"txId"`
	Timestamp time.Time `json:"timestamp"`
	IsDelete  bool      `json:"isDelete"`
	Value     []byte    `json:"value,omitempty"`
}

// separator between the journalled key and its sequence suffix; keys
// never contain NUL so the prefix scan per key is unambiguous
const historySeparator = 0x00

// monotonic sequence guard in case two mutations land on the same
// clock tick
var historySeq struct {
	sync.Mutex
	last uint64
}

func nextHistorySeq(now uint64) uint64 {
	historySeq.Lock()
	defer historySeq.Unlock()
	if now <= historySeq.last {
		now = historySeq.last + 1
	}
	historySeq.last = now
	return now
}

// journal one mutation into the history pool
//
// the sequence suffix is the mutation's nanosecond timestamp:
// invocations execute sequentially so per-key ordering is preserved
// without a read of the previous sequence
func (p *PoolHandle) appendHistory(key []byte, value []byte, isDelete bool) {
	now := time.Now()

	historyKey := make([]byte, 0, len(key)+9)
	historyKey = append(historyKey, key...)
	historyKey = append(historyKey, historySeparator)
	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, nextHistorySeq(uint64(now.UnixNano())))
	historyKey = append(historyKey, seq...)

	entry := HistoryEntry{
		TxId:      uuid.NewString(),
		Timestamp: now.UTC(),
		IsDelete:  isDelete,
		Value:     value,
	}
	data, err := json.Marshal(entry)
	logger.PanicIfError("pool.appendHistory marshal", err)

	p.access.Put(p.prefixKey(historyKey), data)
}

// History - iterate over the mutation log of one key, oldest first
//
// yields the journalled JSON entries; a pool without a journal yields
// nothing
func (p *PoolHandle) History(key []byte) Iterator {
	if nil == p.history {
		return newSliceIterator(nil)
	}

	prefix := make([]byte, 0, len(key)+1)
	prefix = append(prefix, key...)
	prefix = append(prefix, historySeparator)

	return p.history.scanRawPrefix(prefix)
}

// raw byte-prefix scan, used only by the history journal
func (p *PoolHandle) scanRawPrefix(prefix []byte) Iterator {
	searchRange := ldb_util.BytesPrefix(p.prefixKey(prefix))

	poolData.RLock()
	defer poolData.RUnlock()
	return &poolIterator{
		iter: p.access.Iterator(searchRange),
	}
}
