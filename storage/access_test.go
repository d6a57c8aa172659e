// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"testing"

	"github.com/syndtr/goleveldb/leveldb"
)

// a failed commit must discard its pending writes: a record exists
// only if its commit succeeded, so the cache cannot keep serving
// values the engine never accepted
func TestCommitFailureDiscardsPending(t *testing.T) {
	databaseDirectory := "test-access.leveldb"
	os.RemoveAll(databaseDirectory)
	defer os.RemoveAll(databaseDirectory)

	db, err := leveldb.OpenFile(databaseDirectory, nil)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}

	c := newCache()
	access := newDA(db, new(leveldb.Batch), c)

	err = access.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	access.Put([]byte("phantom"), []byte("never committed"))

	// close the engine underneath so the batch write fails
	db.Close()

	err = access.Commit()
	if nil == err {
		t.Fatal("commit on a closed database succeeded")
	}

	if _, _, found := c.Get("phantom"); found {
		t.Errorf("pending write still cached after failed commit")
	}
	if access.InUse() {
		t.Errorf("transaction still in use after failed commit")
	}
}
