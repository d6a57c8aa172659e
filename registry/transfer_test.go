// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assetledger/registryd/fault"
	"github.com/assetledger/registryd/record"
	"github.com/assetledger/registryd/registry"
)

func createFixtures(t *testing.T, r *registry.Registry) {
	err := mustCommit(t, func() error {
		if err := r.Create("asset1", "blue", "35", "tom"); nil != err {
			return err
		}
		if err := r.Create("asset2", "blue", "40", "tom"); nil != err {
			return err
		}
		return r.Create("asset3", "red", "50", "tom")
	})
	assert.NoError(t, err, "fixture create failed")
}

func ownerOf(t *testing.T, r *registry.Registry, name string) string {
	data, err := r.Read(name)
	assert.NoError(t, err, "read %q failed", name)
	asset, err := record.UnpackAsset(data)
	assert.NoError(t, err, "unpack %q failed", name)
	return asset.Owner
}

// bulk transfer only touches assets of the requested type
func TestTransferByType(t *testing.T) {
	r := setup(t)
	defer teardown(t)

	createFixtures(t, r)

	count := 0
	err := mustCommit(t, func() error {
		var transferErr error
		count, transferErr = r.TransferByType("Blue", "Jerry")
		return transferErr
	})
	assert.NoError(t, err, "bulk transfer failed")
	assert.Equal(t, 2, count, "wrong transfer count")

	assert.Equal(t, "jerry", ownerOf(t, r, "asset1"))
	assert.Equal(t, "jerry", ownerOf(t, r, "asset2"))
	assert.Equal(t, "tom", ownerOf(t, r, "asset3"), "red asset transferred")
}

// transferring a type with no assets is a no-op
func TestTransferByTypeEmpty(t *testing.T) {
	r := setup(t)
	defer teardown(t)

	createFixtures(t, r)

	count := 0
	err := mustCommit(t, func() error {
		var transferErr error
		count, transferErr = r.TransferByType("green", "jerry")
		return transferErr
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

// a failure mid-way stops enumeration; earlier transfers stand at this
// layer and roll back only via the aborted transaction
func TestTransferByTypeStopsOnFailure(t *testing.T) {
	r := setup(t)
	defer teardown(t)

	createFixtures(t, r)

	// an index entry whose record is missing: sorts after asset1/asset2
	err := mustCommit(t, func() error {
		storageIndexRaw("blue", "zz-missing")
		return nil
	})
	assert.NoError(t, err)

	count := 0
	err = mustCommit(t, func() error {
		var transferErr error
		count, transferErr = r.TransferByType("blue", "jerry")
		return transferErr
	})
	assert.Equal(t, fault.AssetNotFound, err, "wrong mid-transfer error")
	assert.Equal(t, 2, count, "wrong completed count before failure")

	// the enclosing transaction aborted, so nothing changed
	assert.Equal(t, "tom", ownerOf(t, r, "asset1"))
	assert.Equal(t, "tom", ownerOf(t, r, "asset2"))
}

func TestTransferByTypeValidation(t *testing.T) {
	r := setup(t)
	defer teardown(t)

	_, err := r.TransferByType("", "jerry")
	assert.Equal(t, fault.InvalidAssetType, err)

	_, err = r.TransferByType("blue", "")
	assert.Equal(t, fault.InvalidOwner, err)
}

func TestTransferOne(t *testing.T) {
	r := setup(t)
	defer teardown(t)

	createFixtures(t, r)

	err := mustCommit(t, func() error {
		return r.TransferOne("asset3", "jerry")
	})
	assert.NoError(t, err)
	assert.Equal(t, "jerry", ownerOf(t, r, "asset3"))
}
