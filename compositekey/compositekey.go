// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compositekey - reversible encoding of a named index plus an
// ordered list of string attributes into a single sortable key
//
// The delimiter is a single NUL byte which must not occur in the index
// name or any attribute.  Encoded keys sort byte-lexicographically so
// all entries sharing an index name and leading attributes are
// contiguous, which is what makes prefix scans over an index work.
package compositekey

import (
	"strings"

	"github.com/assetledger/registryd/fault"
)

// Delimiter - separator between index name and attributes
//
// NUL sorts below every other byte, so a partial key followed by the
// delimiter is a proper scan prefix for exactly that attribute value.
const Delimiter = "\x00"

// Encode - build a composite key from an index name and attributes
//
// fails if the index name or any attribute contains the delimiter as
// the key could no longer be decoded unambiguously
func Encode(indexName string, attributes []string) (string, error) {
	if strings.Contains(indexName, Delimiter) {
		return "", fault.DelimiterInIndexName
	}
	for _, attribute := range attributes {
		if strings.Contains(attribute, Delimiter) {
			return "", fault.DelimiterInAttribute
		}
	}
	return indexName + Delimiter + strings.Join(attributes, Delimiter), nil
}

// Decode - split a composite key back into index name and attributes
//
// the inverse of Encode: Decode(Encode(n, a)) == (n, a)
func Decode(key string) (string, []string, error) {
	segments := strings.Split(key, Delimiter)
	if len(segments) < 2 {
		return "", nil, fault.MalformedCompositeKey
	}
	return segments[0], segments[1:], nil
}

// Prefix - build a scan prefix covering all keys of an index that
// share the given leading attributes
//
// the trailing delimiter stops "blue" from also matching "blueish"
func Prefix(indexName string, attributes []string) (string, error) {
	key, err := Encode(indexName, attributes)
	if err != nil {
		return "", err
	}
	return key + Delimiter, nil
}
