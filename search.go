// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - return the stored key equal to the search key
//
// the returned key is the object held by the tree, which matters
// when keys carry payload beyond the ordering field
func (tree *Tree) Get(key Item) (Item, error) {
	if nil == key {
		return nil, fault.ErrKeyIsNil
	}
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.key, nil
}

// Contains - check whether an equal key is stored in the tree
func (tree *Tree) Contains(key Item) (bool, error) {
	if nil == key {
		return false, fault.ErrKeyIsNil
	}
	return nil != search(key, tree.root), nil
}

// internal routine to find the node holding a key
func search(key Item, p *Node) *Node {
	if nil == p {
		return nil
	}
	switch p.key.Compare(key) {
	case +1: // p.key > key
		return search(key, p.left)
	case -1: // p.key < key
		return search(key, p.right)
	default:
		return p
	}
}
