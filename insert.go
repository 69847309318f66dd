// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new key into the tree
//
// returns true if the key was added, false if an equal key was
// already present (the tree and its count are then unchanged)
func (tree *Tree) Insert(key Item) (bool, error) {
	if nil == key {
		return false, fault.ErrKeyIsNil
	}
	root, added := insert(key, tree.root)
	tree.root = root
	if added {
		tree.count += 1
	}
	return added, nil
}

// internal routine for insert
// returns the possibly rotated replacement sub-tree
func insert(key Item, p *Node) (*Node, bool) {
	if nil == p { // insert new leaf
		return newNode(key), true
	}
	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(key, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, p.right)
	default: // duplicate key, nothing to do
		return p, false
	}
	p.update()
	return rebalance(p), added
}
