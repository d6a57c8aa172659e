// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_iterator "github.com/syndtr/goleveldb/leveldb/iterator"
)

// a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Iterator - single-owner, single-consumer scan over a pool
//
// whoever obtains an iterator must call Release on every exit path;
// Release is idempotent so a deferred call is always safe.  Error
// reports a scan aborted by the engine and must be checked after the
// final Next.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Error() error
	Release()
}

// wraps a LevelDB iterator, stripping the pool prefix byte
type poolIterator struct {
	iter     ldb_iterator.Iterator
	key      []byte
	value    []byte
	released bool
}

func (it *poolIterator) Next() bool {
	if it.released || !it.iter.Next() {
		return false
	}

	// contents of the returned slices must not be modified, and are
	// only valid until the next call to Next
	key := it.iter.Key()
	value := it.iter.Value()

	it.key = make([]byte, len(key)-1) // strip the prefix
	copy(it.key, key[1:])

	it.value = make([]byte, len(value))
	copy(it.value, value)

	return true
}

func (it *poolIterator) Key() []byte {
	return it.key
}

func (it *poolIterator) Value() []byte {
	return it.value
}

func (it *poolIterator) Error() error {
	return it.iter.Error()
}

func (it *poolIterator) Release() {
	if !it.released {
		it.released = true
		it.iter.Release()
	}
}

// in-memory iterator backing one page of a paginated scan
type sliceIterator struct {
	elements []Element
	current  int
}

func newSliceIterator(elements []Element) Iterator {
	return &sliceIterator{
		elements: elements,
		current:  -1,
	}
}

func (it *sliceIterator) Next() bool {
	if it.current+1 >= len(it.elements) {
		return false
	}
	it.current += 1
	return true
}

func (it *sliceIterator) Key() []byte {
	return it.elements[it.current].Key
}

func (it *sliceIterator) Value() []byte {
	return it.elements[it.current].Value
}

func (it *sliceIterator) Error() error {
	return nil
}

func (it *sliceIterator) Release() {
}

// filters an underlying iterator by a selector match on the value
type selectorIterator struct {
	Iterator
	match func([]byte) bool
}

func (it *selectorIterator) Next() bool {
	for it.Iterator.Next() {
		if it.match(it.Iterator.Value()) {
			return true
		}
	}
	return false
}
