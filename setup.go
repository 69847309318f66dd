// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewFromList - create a tree holding all keys from a list
//
// keys are inserted in list order, duplicates are silently skipped;
// a nil list or a list with a nil entry is rejected as a whole
// before any key is inserted
func NewFromList(keys []Item) (*Tree, error) {
	if nil == keys {
		return nil, fault.ErrKeyListIsNil
	}
	for _, key := range keys {
		if nil == key {
			return nil, fault.ErrNilKeyInList
		}
	}
	tree := New()
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
//
// for inspection only, the tree must not be modified through it
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - the cached height of the root, -1 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Clear - discard all nodes and reset the count
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
