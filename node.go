// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Item - a key must implement the Compare function
//
// Compare returns +1 if the receiver is greater than the argument,
// -1 if it is less and 0 if the two are equal
type Item interface {
	Compare(interface{}) int
}

// Node - a node in the tree
//
// height and balance are caches of pure functions of the subtree
// shape and are refreshed on every structural change beneath the node
type Node struct {
	left    *Node // left sub-tree
	right   *Node // right sub-tree
	key     Item  // key for ordering
	height  int   // longest path down to a leaf
	balance int   // height(left) - height(right)
}

// allocate a new leaf node
func newNode(key Item) *Node {
	return &Node{
		key:     key,
		height:  0,
		balance: 0,
	}
}

// cached height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// refresh the cached height and balance factor from the children
//
// children must already hold correct caches, so after a rotation the
// node that moved down is updated before the node that moved up
func (p *Node) update() {
	hl := height(p.left)
	hr := height(p.right)
	p.balance = hl - hr
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// Key - read the key from a node
func (p *Node) Key() Item {
	return p.key
}

// Left - read-only access to the left sub-tree
func (p *Node) Left() *Node {
	return p.left
}

// Right - read-only access to the right sub-tree
func (p *Node) Right() *Node {
	return p.right
}

// Height - the cached height of the node
func (p *Node) Height() int {
	return p.height
}

// BalanceFactor - the cached balance factor of the node
func (p *Node) BalanceFactor() int {
	return p.balance
}
