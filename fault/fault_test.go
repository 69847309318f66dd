// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
)

// test that the error classes can be distinguished
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		notFound bool
	}{
		{ErrInvalidOne, true, false},
		{ErrInvalidTwo, true, false},
		{ErrNotFoundOne, false, true},
		{ErrNotFoundTwo, false, true},
		{fault.ErrKeyIsNil, true, false},
		{fault.ErrKeyListIsNil, true, false},
		{fault.ErrNilKeyInList, true, false},
		{fault.ErrDistanceIsNegative, true, false},
		{fault.ErrKeyNotFound, false, true},
	}

	for i, item := range errorList {
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid class mismatch for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found class mismatch for: %v", i, item.err)
		}
	}
}

// test that equal messages in different classes stay distinct
func TestErrorIdentity(t *testing.T) {
	e1 := fault.InvalidError("some message")
	e2 := fault.NotFoundError("some message")
	if e1.Error() != e2.Error() {
		t.Errorf("message mismatch: %q != %q", e1.Error(), e2.Error())
	}
	if fault.IsErrNotFound(e1) {
		t.Errorf("invalid error classified as not found")
	}
	if fault.IsErrInvalid(e2) {
		t.Errorf("not found error classified as invalid")
	}
}
