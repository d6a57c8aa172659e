// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"encoding/json"
	"time"

	"github.com/assetledger/registryd/record"
	"github.com/assetledger/registryd/storage"
)

// Result - one record from a range or rich query
//
// Record carries the decoded envelope when the stored bytes parse;
// otherwise Raw carries them untouched
type Result struct {
	Key    string        `json:"key"`
	Record *record.Asset `json:"record,omitempty"`
	Raw    []byte        `json:"raw,omitempty"`
}

// HistoryResult - one past mutation of a record
//
// the journalled value is opportunistically decoded: it may represent
// a tombstoned state and need not parse
type HistoryResult struct {
	TxId      string        `json:"txId"`
	Timestamp time.Time     `json:"timestamp"`
	IsDelete  bool          `json:"isDelete"`
	Record    *record.Asset `json:"record,omitempty"`
	Raw       []byte        `json:"raw,omitempty"`
}

// drain an iterator into decoded results, always releasing it
func collect(it storage.Iterator) ([]Result, error) {
	defer it.Release()

	results := []Result{}
	for it.Next() {
		result := Result{
			Key: string(it.Key()),
		}
		value := it.Value()
		if len(value) > 0 {
			asset, err := record.UnpackAsset(value)
			if nil == err {
				result.Record = asset
			} else {
				result.Raw = value
			}
		}
		results = append(results, result)
	}
	if err := it.Error(); nil != err {
		return nil, err
	}
	return results, nil
}

// drain a history iterator, always releasing it
func collectHistory(it storage.Iterator) ([]HistoryResult, error) {
	defer it.Release()

	results := []HistoryResult{}
	for it.Next() {
		var entry storage.HistoryEntry
		err := json.Unmarshal(it.Value(), &entry)
		if nil != err {
			return nil, err
		}

		result := HistoryResult{
			TxId:      entry.TxId,
			Timestamp: entry.Timestamp,
			IsDelete:  entry.IsDelete,
		}
		if len(entry.Value) > 0 {
			asset, assetErr := record.UnpackAsset(entry.Value)
			if nil == assetErr {
				result.Record = asset
			} else {
				result.Raw = entry.Value
			}
		}
		results = append(results, result)
	}
	if err := it.Error(); nil != err {
		return nil, err
	}
	return results, nil
}
