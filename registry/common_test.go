// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/assetledger/registryd/compositekey"
	"github.com/assetledger/registryd/registry"
	"github.com/assetledger/registryd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

// configure logging and storage for one test
func setup(t *testing.T) *registry.Registry {
	removeFiles()
	err := os.MkdirAll(testingDirName, 0o700)
	if nil != err {
		t.Fatalf("mkdir error: %s", err)
	}

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	err = logger.Initialise(logging)
	if nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	err = storage.Initialise(databaseFileName, false)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	return registry.New(logger.New("registry"), storage.Pool.Assets, storage.Pool.Index)
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// run a mutation inside its own commit boundary
func mustCommit(t *testing.T, mutate func() error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	err = mutate()
	if nil != err {
		trx.Abort()
		return err
	}
	commitErr := trx.Commit()
	if nil != commitErr {
		t.Fatalf("transaction commit error: %s", commitErr)
	}
	return nil
}

// overwrite stored bytes directly, bypassing the registry
func storagePutRaw(key string, value string) {
	storage.Pool.Assets.Put([]byte(key), []byte(value))
}

// plant an index entry directly, bypassing the registry
func storageIndexRaw(assetType string, name string) {
	key, err := compositekey.Encode(registry.TypeIndexName, []string{assetType, name})
	if nil != err {
		panic(err)
	}
	storage.Pool.Index.Put([]byte(key), []byte{0x00})
}

// enumerate the names indexed under one type
func namesByType(t *testing.T, r *registry.Registry, assetType string) []string {
	names := []string{}
	err := r.ScanByType(assetType, func(name string) error {
		names = append(names, name)
		return nil
	})
	if nil != err {
		t.Fatalf("scan by type error: %s", err)
	}
	return names
}
