// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the asset record store
//
// Maintains primary records addressed by name together with a derived
// secondary index keyed by asset type.  The two writes of a mutation
// are issued in order against the same pools and rely on the enclosing
// storage transaction to commit them atomically; no atomicity is
// provided here.
package registry

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/assetledger/registryd/fault"
	"github.com/assetledger/registryd/record"
	"github.com/assetledger/registryd/storage"
)

// TypeIndexName - name of the composite index from asset type back to
// primary keys
const TypeIndexName = "assetType~name"

// the index value is a marker only, never interpreted
var indexSentinel = []byte{0x00}

// Registry - CRUD over asset records with index maintenance
type Registry struct {
	log    *logger.L
	assets storage.Handle
	index  storage.Handle
}

// New - build a registry over the given pools
func New(log *logger.L, assets storage.Handle, index storage.Handle) *Registry {
	return &Registry{
		log:    log,
		assets: assets,
		index:  index,
	}
}

// Create - register a new asset and its index entry
func (r *Registry) Create(name string, assetType string, price string, owner string) error {
	asset, err := record.NewAsset(name, assetType, price, owner)
	if nil != err {
		return err
	}

	if r.assets.Has([]byte(asset.Name)) {
		return fault.AssetAlreadyExists
	}

	packed, err := asset.Pack()
	if nil != err {
		return err
	}

	r.log.Infof("create: %q type: %q owner: %q", asset.Name, asset.Type, asset.Owner)

	r.assets.Put([]byte(asset.Name), packed)
	return r.indexAdd(asset.Type, asset.Name)
}

// Read - fetch the raw stored bytes of an asset
func (r *Registry) Read(name string) ([]byte, error) {
	data := r.assets.Get([]byte(name))
	if nil == data {
		return nil, fault.AssetNotFound
	}
	return data, nil
}

// Delete - remove an asset and its index entry
//
// the record is read first to recover the type for index removal
func (r *Registry) Delete(name string) error {
	data := r.assets.Get([]byte(name))
	if nil == data {
		return fault.AssetNotFound
	}

	asset, err := record.UnpackAsset(data)
	if nil != err {
		return err
	}

	r.log.Infof("delete: %q type: %q", asset.Name, asset.Type)

	r.assets.Delete([]byte(name))
	return r.indexRemove(asset.Type, asset.Name)
}

// SetOwner - replace the owner of an asset, leaving everything else
// untouched
//
// the index is not rewritten as type is immutable for a given name
func (r *Registry) SetOwner(name string, newOwner string) error {
	if "" == newOwner {
		return fault.InvalidOwner
	}

	data := r.assets.Get([]byte(name))
	if nil == data {
		return fault.AssetNotFound
	}

	asset, err := record.UnpackAsset(data)
	if nil != err {
		return err
	}

	asset.Owner = strings.ToLower(newOwner)
	packed, err := asset.Pack()
	if nil != err {
		return err
	}

	r.log.Infof("transfer: %q to: %q", asset.Name, asset.Owner)

	r.assets.Put([]byte(name), packed)
	return nil
}
