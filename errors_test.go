// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree"
	"github.com/bitmark-inc/avltree/fault"
)

// nil keys are rejected before anything is touched
func TestNilKeyArguments(t *testing.T) {
	tree := makeTree(t, 1, 0, 2)

	added, err := tree.Insert(nil)
	assert.Equal(t, fault.ErrKeyIsNil, err, "Insert nil error")
	assert.False(t, added, "Insert nil added")

	_, err = tree.Remove(nil)
	assert.Equal(t, fault.ErrKeyIsNil, err, "Remove nil error")

	_, err = tree.Get(nil)
	assert.Equal(t, fault.ErrKeyIsNil, err, "Get nil error")

	_, err = tree.Contains(nil)
	assert.Equal(t, fault.ErrKeyIsNil, err, "Contains nil error")

	_, err = tree.Neighborhood(nil, 1)
	assert.Equal(t, fault.ErrKeyIsNil, err, "Neighborhood nil error")

	// nothing was modified
	assert.Equal(t, 3, tree.Count(), "count after rejected calls")
	verifyTree(t, tree)
}

func TestNewFromListErrors(t *testing.T) {
	_, err := avltree.NewFromList(nil)
	assert.Equal(t, fault.ErrKeyListIsNil, err, "nil list error")

	_, err = avltree.NewFromList([]avltree.Item{
		numberItem(1), nil, numberItem(2),
	})
	assert.Equal(t, fault.ErrNilKeyInList, err, "nil entry error")
}

func TestNotFoundErrors(t *testing.T) {
	tree := makeTree(t, 1, 0, 2)

	_, err := tree.Get(numberItem(9))
	assert.Equal(t, fault.ErrKeyNotFound, err, "Get missing error")

	_, err = tree.Remove(numberItem(9))
	assert.Equal(t, fault.ErrKeyNotFound, err, "Remove missing error")

	_, err = tree.Neighborhood(numberItem(9), 1)
	assert.Equal(t, fault.ErrKeyNotFound, err, "Neighborhood missing error")

	// empty tree behaves the same
	empty := avltree.New()
	_, err = empty.Get(numberItem(1))
	assert.Equal(t, fault.ErrKeyNotFound, err, "Get on empty error")

	// failed removes leave the tree unchanged
	assert.Equal(t, 3, tree.Count(), "count after rejected removes")
	verifyTree(t, tree)
}

func TestNegativeDistance(t *testing.T) {
	tree := makeTree(t, 1, 0, 2)

	_, err := tree.Neighborhood(numberItem(1), -1)
	assert.Equal(t, fault.ErrDistanceIsNegative, err, "negative distance error")
}

// the two error kinds are distinguishable by class
func TestErrorClassification(t *testing.T) {
	tree := makeTree(t, 1, 0, 2)

	_, err := tree.Insert(nil)
	assert.True(t, fault.IsErrInvalid(err), "invalid class")
	assert.False(t, fault.IsErrNotFound(err), "invalid not misclassified")

	_, err = tree.Get(numberItem(9))
	assert.True(t, fault.IsErrNotFound(err), "not found class")
	assert.False(t, fault.IsErrInvalid(err), "not found not misclassified")
}
