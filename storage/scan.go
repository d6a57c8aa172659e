// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/hex"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/assetledger/registryd/compositekey"
	"github.com/assetledger/registryd/fault"
)

// PageMeta - pagination metadata returned alongside one page
//
// RecordsCount is the number of elements actually in the page, not the
// total across all pages.  Bookmark is opaque to callers and must be
// passed back verbatim to continue; the empty string starts from the
// beginning of the result set.
type PageMeta struct {
	RecordsCount int    `json:"recordsCount"`
	Bookmark     string `json:"bookmark"`
}

// ScanRange - ordered iteration over [start, end)
//
// a nil or empty end scans to the end of the pool
func (p *PoolHandle) ScanRange(start []byte, end []byte) Iterator {
	searchRange := ldb_util.Range{
		Start: p.prefixKey(start),
		Limit: p.limit,
	}
	if len(end) > 0 {
		searchRange.Limit = p.prefixKey(end)
	}

	poolData.RLock()
	defer poolData.RUnlock()
	return &poolIterator{
		iter: p.access.Iterator(&searchRange),
	}
}

// ScanPrefix - ordered iteration over all composite keys of one index
// sharing the given leading attributes
func (p *PoolHandle) ScanPrefix(indexName string, attributes []string) (Iterator, error) {
	prefix, err := compositekey.Prefix(indexName, attributes)
	if err != nil {
		return nil, err
	}

	searchRange := ldb_util.BytesPrefix(p.prefixKey([]byte(prefix)))

	poolData.RLock()
	defer poolData.RUnlock()
	return &poolIterator{
		iter: p.access.Iterator(searchRange),
	}, nil
}

// ScanRangePaginated - one page of a range scan
//
// the page is at most pageSize elements; the returned bookmark resumes
// the scan where this page ended
func (p *PoolHandle) ScanRangePaginated(start []byte, end []byte, pageSize int, bookmark string) (Iterator, *PageMeta, error) {
	if pageSize <= 0 {
		return nil, nil, fault.InvalidPageSize
	}
	resume, err := decodeBookmark(bookmark)
	if err != nil {
		return nil, nil, err
	}
	if nil != resume && bytes.Compare(resume, start) > 0 {
		start = resume
	}
	return paginate(p.ScanRange(start, end), pageSize)
}

// drain up to pageSize elements into a page, always releasing the
// underlying iterator
func paginate(it Iterator, pageSize int) (Iterator, *PageMeta, error) {
	defer it.Release()

	elements := make([]Element, 0, pageSize)
	for len(elements) < pageSize && it.Next() {
		elements = append(elements, Element{
			Key:   it.Key(),
			Value: it.Value(),
		})
	}
	if err := it.Error(); nil != err {
		return nil, nil, err
	}

	meta := &PageMeta{
		RecordsCount: len(elements),
	}
	if n := len(elements); n > 0 {
		meta.Bookmark = encodeBookmark(elements[n-1].Key)
	}
	return newSliceIterator(elements), meta, nil
}

// the bookmark is the smallest key strictly after the last one served
func encodeBookmark(lastKey []byte) string {
	next := make([]byte, 0, len(lastKey)+1)
	next = append(next, lastKey...)
	next = append(next, 0x00)
	return hex.EncodeToString(next)
}

func decodeBookmark(bookmark string) ([]byte, error) {
	if "" == bookmark {
		return nil, nil
	}
	resume, err := hex.DecodeString(bookmark)
	if err != nil {
		return nil, fault.InvalidBookmark
	}
	return resume, nil
}
