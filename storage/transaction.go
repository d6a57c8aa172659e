// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the enclosing commit boundary for one invocation
//
// every mutation issued through the pools between NewDBTransaction and
// Commit lands in a single batch and becomes durable atomically; Abort
// discards the lot
type Transaction interface {
	Commit() error
	Abort()
}

type transactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transactionImpl{
		access: access,
	}
}

func (t *transactionImpl) Commit() error {
	return t.access.Commit()
}

func (t *transactionImpl) Abort() {
	t.access.Abort()
}
