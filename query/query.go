// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package query - read-side access to the asset store
//
// Range scans run over primary keys, rich queries pass a selector
// through to the store's query capability, history scans drain the
// per-key mutation log.  Every variant drains its iterator through the
// collector so the iterator is released on all paths.
package query

import (
	"github.com/bitmark-inc/logger"

	"github.com/assetledger/registryd/storage"
)

// Engine - the query entry points over one asset pool
type Engine struct {
	log    *logger.L
	assets storage.Handle
}

// New - build a query engine over the given pool
func New(log *logger.L, assets storage.Handle) *Engine {
	return &Engine{
		log:    log,
		assets: assets,
	}
}

// Range - all records with start <= name < end in key order
//
// an empty end scans to the end of the key space
func (e *Engine) Range(start string, end string) ([]Result, error) {
	e.log.Debugf("range: [%q, %q)", start, end)
	return collect(e.assets.ScanRange([]byte(start), []byte(end)))
}

// RangePaginated - one page of a range scan plus resume metadata
func (e *Engine) RangePaginated(start string, end string, pageSize int, bookmark string) ([]Result, *storage.PageMeta, error) {
	it, meta, err := e.assets.ScanRangePaginated([]byte(start), []byte(end), pageSize, bookmark)
	if nil != err {
		return nil, nil, err
	}
	results, err := collect(it)
	if nil != err {
		return nil, nil, err
	}
	return results, meta, nil
}

// Rich - records matching a selector expression
//
// ordering is whatever the store's query capability returns; a store
// without the capability reports QueryNotSupported
func (e *Engine) Rich(selector string) ([]Result, error) {
	e.log.Debugf("rich query: %s", selector)
	it, err := e.assets.QueryBySelector(selector)
	if nil != err {
		return nil, err
	}
	return collect(it)
}

// RichPaginated - one page of a rich query plus resume metadata
func (e *Engine) RichPaginated(selector string, pageSize int, bookmark string) ([]Result, *storage.PageMeta, error) {
	it, meta, err := e.assets.QueryBySelectorPaginated(selector, pageSize, bookmark)
	if nil != err {
		return nil, nil, err
	}
	results, err := collect(it)
	if nil != err {
		return nil, nil, err
	}
	return results, meta, nil
}

// History - the mutation log of one name, oldest first
func (e *Engine) History(name string) ([]HistoryResult, error) {
	e.log.Debugf("history: %q", name)
	return collectHistory(e.assets.History([]byte(name)))
}
