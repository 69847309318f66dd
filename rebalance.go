// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// restore |balance| <= 1 at a single node whose cached metadata has
// just been refreshed
//
// only this node is corrected; the caller keeps rebalancing on the
// unwind all the way to the root, as remove can need a rotation at
// several levels
func rebalance(p *Node) *Node {
	if p.balance < -1 { // right heavy
		if p.right.balance > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		p = rotateLeft(p)
	} else if p.balance > 1 { // left heavy
		if p.left.balance < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		p = rotateRight(p)
	}
	return p
}

// pivot the right child up; p must have a right child
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	p.update() // lower node first, p1 depends on it
	p1.update()
	return p1
}

// pivot the left child up; p must have a left child
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	p.update() // lower node first, p1 depends on it
	p1.update()
	return p1
}
