// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type MalformedError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnsupportedError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ExistsError("already initialised")
	AssetAlreadyExists      = ExistsError("asset already exists")
	AssetNotFound           = NotFoundError("asset not found")
	CorruptAssetRecord      = ProcessError("corrupt asset record")
	DelimiterInAttribute    = InvalidError("attribute contains the composite key delimiter")
	DelimiterInIndexName    = InvalidError("index name contains the composite key delimiter")
	InvalidBookmark         = InvalidError("invalid bookmark")
	InvalidOwner            = InvalidError("owner is required")
	InvalidPageSize         = InvalidError("page size must be positive")
	InvalidSelector         = InvalidError("selector is not valid JSON")
	InvalidPrice            = InvalidError("price must be a non-negative integer")
	InvalidAssetName        = InvalidError("asset name is required")
	InvalidAssetType        = InvalidError("asset type is required")
	MalformedCompositeKey   = MalformedError("malformed composite key")
	MissingDataDirectory    = InvalidError("data directory is required")
	NotInitialised          = NotFoundError("not initialised")
	QueryNotSupported       = UnsupportedError("store has no rich query capability")
	RateLimiting            = ProcessError("rate limiting")
	TransactionAlreadyInUse = ExistsError("transaction already in use")
	UnknownOperation        = NotFoundError("unknown operation")
	WrongArgumentCount      = InvalidError("wrong argument count")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e MalformedError) Error() string   { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e UnsupportedError) Error() string { return string(e) }

// IsErrExists - determine if conflict class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if invalid argument class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrMalformed - determine if malformed key class
func IsErrMalformed(e error) bool { _, ok := e.(MalformedError); return ok }

// IsErrNotFound - determine if not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if corrupt data class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrUnsupported - determine if unsupported capability class
func IsErrUnsupported(e error) bool { _, ok := e.(UnsupportedError); return ok }
