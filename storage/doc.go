// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++         = concatenation of byte data
// 3. name       = asset name (utf-8 text, primary key)
// 4. seq        = big endian uint64 history sequence (8 bytes)
// 5. composite  = index name and attributes joined by NUL (see compositekey)
//
// Assets:
//
//   A ++ name                  - asset records
//                                data: JSON asset envelope
//
// Index:
//
//   I ++ composite             - secondary index entries
//                                data: single sentinel byte, never interpreted
//
// History:
//
//   H ++ name ++ 00 ++ seq     - per-key mutation log, oldest first
//                                data: JSON history entry
//                                      (txId, timestamp, isDelete, value)
//
// Testing:
//
//   Z ++ key                   - testing data
//
// All writes are accumulated in a batch together with a write-through
// cache so a caller sees its own pending writes; the batch is flushed
// atomically by the enclosing transaction commit.  Iterators observe
// committed state only.
package storage
