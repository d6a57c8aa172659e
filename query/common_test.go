// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/assetledger/registryd/query"
	"github.com/assetledger/registryd/registry"
	"github.com/assetledger/registryd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

// configure logging, storage, a registry for fixtures and the engine
// under test
func setup(t *testing.T, richQuery bool) (*query.Engine, *registry.Registry) {
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

	err = storage.Initialise(databaseFileName, richQuery)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	e := query.New(logger.New("query"), storage.Pool.Assets)
	r := registry.New(logger.New("registry"), storage.Pool.Assets, storage.Pool.Index)
	return e, r
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// run a mutation inside its own commit boundary
func mustCommit(t *testing.T, mutate func() error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	err = mutate()
	if nil != err {
		trx.Abort()
		t.Fatalf("mutation error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}
}

// keys of a result list
func keysOf(results []query.Result) []string {
	keys := make([]string, 0, len(results))
	for _, result := range results {
		keys = append(keys, result.Key)
	}
	return keys
}
