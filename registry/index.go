// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/assetledger/registryd/compositekey"
	"github.com/assetledger/registryd/fault"
)

// write the sentinel under the composite key for one record
func (r *Registry) indexAdd(assetType string, name string) error {
	key, err := compositekey.Encode(TypeIndexName, []string{assetType, name})
	if nil != err {
		return err
	}
	r.index.Put([]byte(key), indexSentinel)
	return nil
}

// remove the index entry for one record
func (r *Registry) indexRemove(assetType string, name string) error {
	key, err := compositekey.Encode(TypeIndexName, []string{assetType, name})
	if nil != err {
		return err
	}
	r.index.Delete([]byte(key))
	return nil
}

// ScanByType - run fn over the name of every asset carrying the type
//
// names arrive in index order; enumeration stops at the first error
// from fn and the underlying iterator is always released
func (r *Registry) ScanByType(assetType string, fn func(name string) error) error {
	it, err := r.index.ScanPrefix(TypeIndexName, []string{assetType})
	if nil != err {
		return err
	}
	defer it.Release()

	for it.Next() {
		_, attributes, err := compositekey.Decode(string(it.Key()))
		if nil != err {
			return err
		}
		if 2 != len(attributes) {
			return fault.MalformedCompositeKey
		}
		err = fn(attributes[1])
		if nil != err {
			return err
		}
	}
	return it.Error()
}
