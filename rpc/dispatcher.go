// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - the invocation surface of the registry
//
// Operations arrive as a name plus an ordered list of string
// arguments.  The dispatch table is built once at startup; every
// dispatch runs inside its own storage transaction so the record and
// index writes of one invocation commit atomically.
package rpc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/assetledger/registryd/fault"
	"github.com/assetledger/registryd/query"
	"github.com/assetledger/registryd/registry"
	"github.com/assetledger/registryd/storage"
)

// a handler takes the argument list, already arity checked
type handlerFunc func(args []string) (interface{}, error)

type operation struct {
	arity   int
	handler handlerFunc
}

// Dispatcher - static mapping from operation name to handler
type Dispatcher struct {
	sync.Mutex // concurrent invocations queue for the transaction
	log        *logger.L
	table      map[string]operation
}

// Page - one page of a paginated query plus its resume metadata
type Page struct {
	Records []query.Result    `json:"records"`
	Meta    *storage.PageMeta `json:"meta"`
}

// NewDispatcher - build the operation table
func NewDispatcher(log *logger.L, r *registry.Registry, e *query.Engine) *Dispatcher {

	d := &Dispatcher{
		log: log,
	}

	d.table = map[string]operation{

		"initAsset": {4, func(args []string) (interface{}, error) {
			return nil, r.Create(args[0], args[1], args[2], args[3])
		}},

		"readAsset": {1, func(args []string) (interface{}, error) {
			data, err := r.Read(args[0])
			if nil != err {
				return nil, err
			}
			return json.RawMessage(data), nil
		}},

		"delete": {1, func(args []string) (interface{}, error) {
			return nil, r.Delete(args[0])
		}},

		"transferAsset": {2, func(args []string) (interface{}, error) {
			return nil, r.TransferOne(args[0], args[1])
		}},

		"transferAssetsBasedOnType": {2, func(args []string) (interface{}, error) {
			count, err := r.TransferByType(args[0], args[1])
			if nil != err {
				return nil, err
			}
			return fmt.Sprintf("transferred %d %q assets to %q",
				count, strings.ToLower(args[0]), strings.ToLower(args[1])), nil
		}},

		"getAssetsByRange": {2, func(args []string) (interface{}, error) {
			return e.Range(args[0], args[1])
		}},

		"queryAssetsByOwner": {1, func(args []string) (interface{}, error) {
			return e.Rich(ownerSelector(args[0]))
		}},

		"queryAssets": {1, func(args []string) (interface{}, error) {
			return e.Rich(args[0])
		}},

		"getHistoryForAsset": {1, func(args []string) (interface{}, error) {
			return e.History(args[0])
		}},

		"getAssetsByRangeWithPagination": {4, func(args []string) (interface{}, error) {
			pageSize, err := parsePageSize(args[2])
			if nil != err {
				return nil, err
			}
			records, meta, err := e.RangePaginated(args[0], args[1], pageSize, args[3])
			if nil != err {
				return nil, err
			}
			return Page{Records: records, Meta: meta}, nil
		}},

		"queryAssetsWithPagination": {3, func(args []string) (interface{}, error) {
			pageSize, err := parsePageSize(args[1])
			if nil != err {
				return nil, err
			}
			records, meta, err := e.RichPaginated(args[0], pageSize, args[2])
			if nil != err {
				return nil, err
			}
			return Page{Records: records, Meta: meta}, nil
		}},
	}

	return d
}

// Dispatch - run one named operation inside its own commit boundary
//
// failures abort the transaction so an invocation either commits whole
// or leaves no trace
func (d *Dispatcher) Dispatch(name string, args []string) (interface{}, error) {
	op, ok := d.table[name]
	if !ok {
		d.log.Warnf("unknown operation: %q", name)
		return nil, fault.UnknownOperation
	}
	if len(args) != op.arity {
		d.log.Warnf("%s: %d arguments  expected: %d", name, len(args), op.arity)
		return nil, fault.WrongArgumentCount
	}

	// the server runs each request on its own goroutine but the store
	// has a single transaction, so invocations execute one at a time
	d.Lock()
	defer d.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	result, err := op.handler(args)
	if nil != err {
		trx.Abort()
		d.log.Infof("%s: %s", name, err)
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	return result, nil
}

// equality selector for all assets of one owner
func ownerSelector(owner string) string {
	selector, _ := json.Marshal(map[string]interface{}{
		"selector": map[string]string{
			"docType": "asset",
			"owner":   strings.ToLower(owner),
		},
	})
	return string(selector)
}

// the invocation layer passes page sizes as decimal strings
func parsePageSize(text string) (int, error) {
	pageSize, err := strconv.Atoi(text)
	if nil != err {
		return 0, fault.InvalidPageSize
	}
	return pageSize, nil
}
