// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/json"
	"reflect"

	"github.com/assetledger/registryd/fault"
)

// QueryBySelector - iterate over all values of the pool matching a
// selector
//
// the selector is a JSON object of field -> value equalities, either
// bare or wrapped as {"selector": {...}} in the CouchDB style; a pool
// configured without the rich query capability reports
// QueryNotSupported.  Result order follows the pool's key order.
func (p *PoolHandle) QueryBySelector(selector string) (Iterator, error) {
	if !p.queryable {
		return nil, fault.QueryNotSupported
	}
	match, err := parseSelector(selector)
	if err != nil {
		return nil, err
	}
	return &selectorIterator{
		Iterator: p.ScanRange(nil, nil),
		match:    match,
	}, nil
}

// QueryBySelectorPaginated - one page of a selector query
func (p *PoolHandle) QueryBySelectorPaginated(selector string, pageSize int, bookmark string) (Iterator, *PageMeta, error) {
	if !p.queryable {
		return nil, nil, fault.QueryNotSupported
	}
	if pageSize <= 0 {
		return nil, nil, fault.InvalidPageSize
	}
	match, err := parseSelector(selector)
	if err != nil {
		return nil, nil, err
	}
	resume, err := decodeBookmark(bookmark)
	if err != nil {
		return nil, nil, err
	}

	var start []byte
	if nil != resume {
		start = resume
	}
	return paginate(&selectorIterator{
		Iterator: p.ScanRange(start, nil),
		match:    match,
	}, pageSize)
}

// build a matcher from the selector expression
func parseSelector(selector string) (func([]byte) bool, error) {
	var expression map[string]interface{}
	if err := json.Unmarshal([]byte(selector), &expression); err != nil {
		return nil, fault.InvalidSelector
	}
	if inner, ok := expression["selector"].(map[string]interface{}); ok {
		expression = inner
	}

	match := func(value []byte) bool {
		var document map[string]interface{}
		if json.Unmarshal(value, &document) != nil {
			// non-document values never match
			return false
		}
		for field, want := range expression {
			got, ok := document[field]
			if !ok || !reflect.DeepEqual(got, want) {
				return false
			}
		}
		return true
	}
	return match, nil
}
