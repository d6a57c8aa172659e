// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/assetledger/registryd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T, richQuery bool) {
	removeFiles()
	err := storage.Initialise(databaseFileName, richQuery)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

// write some elements and flush them as one transaction
func mustCommit(t *testing.T, write func()) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	write()
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}
}

// drain an iterator into elements, checking the scan error
func drain(t *testing.T, it storage.Iterator) []storage.Element {
	defer it.Release()

	elements := []storage.Element{}
	for it.Next() {
		elements = append(elements, storage.Element{
			Key:   it.Key(),
			Value: it.Value(),
		})
	}
	if err := it.Error(); nil != err {
		t.Fatalf("iterator error: %s", err)
	}
	return elements
}
