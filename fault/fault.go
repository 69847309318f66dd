// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrDistanceIsNegative = InvalidError("distance cannot be negative")
	ErrKeyIsNil           = InvalidError("key cannot be nil")
	ErrKeyListIsNil       = InvalidError("key list cannot be nil")
	ErrKeyNotFound        = NotFoundError("key is not in the tree")
	ErrNilKeyInList       = InvalidError("key list contains a nil key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
