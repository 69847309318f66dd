// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"fmt"
)

// CheckBalance - verify the cached metadata for consistency
//
// recomputes every height bottom-up and compares with the caches,
// also confirms every balance factor is in [-1, 1]
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: metadata checker, returns the true height of the sub-tree
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, okl := checkBalance(p.left)
	hr, okr := checkBalance(p.right)
	if !okl || !okr {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height || hl-hr != p.balance {
		fmt.Printf("fail at node: %v   cached: h:%d b:%+d  actual: h:%d b:%+d\n",
			p.key, p.height, p.balance, h, hl-hr)
		return 0, false
	}
	if p.balance < -1 || p.balance > 1 {
		fmt.Printf("fail at node: %v   balance out of range: %+d\n", p.key, p.balance)
		return 0, false
	}
	return h, true
}

// CheckOrder - verify the search order over the whole tree
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: order checker, all keys must lie strictly in (lo, hi)
func checkOrder(p *Node, lo Item, hi Item) bool {
	if nil == p {
		return true
	}
	if nil != lo && p.key.Compare(lo) <= 0 {
		fmt.Printf("fail at node: %v   not above: %v\n", p.key, lo)
		return false
	}
	if nil != hi && p.key.Compare(hi) >= 0 {
		fmt.Printf("fail at node: %v   not below: %v\n", p.key, hi)
		return false
	}
	if !checkOrder(p.left, lo, p.key) {
		return false
	}
	return checkOrder(p.right, p.key, hi)
}

// CheckCount - verify the stored count against reachable nodes
func (tree *Tree) CheckCount() bool {
	n := countNodes(tree.root)
	if n != tree.count {
		fmt.Printf("fail: count: %d  reachable nodes: %d\n", tree.count, n)
		return false
	}
	return true
}

// internal: count all nodes of a sub-tree
func countNodes(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
