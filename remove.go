// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - remove a specific key from the tree
//
// returns the stored key, which for a two child node is the key held
// before the successor copy, not the caller's search key
func (tree *Tree) Remove(key Item) (Item, error) {
	if nil == key {
		return nil, fault.ErrKeyIsNil
	}
	p := search(key, tree.root)
	if nil == p { // checked before any mutation
		return nil, fault.ErrKeyNotFound
	}
	removed := p.key
	tree.root = remove(key, tree.root)
	tree.count -= 1
	return removed, nil
}

// internal routine for remove
// returns the possibly rotated replacement sub-tree
//
// a node with two children is not unlinked: the in-order successor
// key is copied over its key and the successor's old node is removed
// from the right sub-tree, which is always a leaf or one child case
func remove(key Item, p *Node) *Node {
	if nil == p {
		return nil
	}
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left = remove(key, p.left)
	case -1: // p.key < key
		p.right = remove(key, p.right)
	default: // found
		if nil == p.left { // leaf or right child only: splice
			return p.right
		} else if nil == p.right { // left child only: splice
			return p.left
		}
		p.key = successor(p.right)
		p.right = remove(p.key, p.right)
	}
	p.update()
	return rebalance(p)
}

// smallest key of a non-empty sub-tree
func successor(p *Node) Item {
	for nil != p.left {
		p = p.left
	}
	return p.key
}
