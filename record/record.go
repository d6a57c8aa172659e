// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the asset record envelope
//
// Assets are stored as a JSON envelope carrying a constant docType tag
// so records of different kinds can share one key space.  Decoding is
// defensive: callers that can tolerate foreign bytes fall back to the
// raw value when UnpackAsset fails.
package record

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/assetledger/registryd/fault"
)

// AssetDocType - constant tag identifying an asset record
const AssetDocType = "asset"

// Asset - a single registered asset
//
// Name is the primary key and globally unique.  Type and Owner are
// normalised to lower case on construction.  Type is immutable for the
// life of the record.
type Asset struct {
	DocType string `json:"docType"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Price   uint64 `json:"price"`
	Owner   string `json:"owner"`
}

// NewAsset - validate the string form arguments and build a record
//
// price arrives as a decimal string from the invocation layer; parsing
// is checked explicitly so non-numeric input is rejected rather than
// silently converted
func NewAsset(name string, assetType string, price string, owner string) (*Asset, error) {
	if name == "" {
		return nil, fault.InvalidAssetName
	}
	if assetType == "" {
		return nil, fault.InvalidAssetType
	}
	if owner == "" {
		return nil, fault.InvalidOwner
	}
	n, err := strconv.ParseUint(price, 10, 64)
	if err != nil {
		return nil, fault.InvalidPrice
	}

	return &Asset{
		DocType: AssetDocType,
		Name:    name,
		Type:    strings.ToLower(assetType),
		Price:   n,
		Owner:   strings.ToLower(owner),
	}, nil
}

// Pack - serialise the record for storage
func (asset *Asset) Pack() ([]byte, error) {
	return json.Marshal(asset)
}

// UnpackAsset - deserialise stored bytes back into a record
//
// fails with CorruptAssetRecord unless the bytes are a well formed
// asset envelope
func UnpackAsset(data []byte) (*Asset, error) {
	var asset Asset
	err := json.Unmarshal(data, &asset)
	if err != nil {
		return nil, fault.CorruptAssetRecord
	}
	if asset.DocType != AssetDocType || asset.Name == "" {
		return nil, fault.CorruptAssetRecord
	}
	return &asset, nil
}
