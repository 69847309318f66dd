// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Neighborhood - all keys within a tree-edge distance of a target key
//
// the target key must already be present and maxDistance must not be
// negative; the result always contains the target itself
func (tree *Tree) Neighborhood(key Item, maxDistance int) (KeySet, error) {
	if nil == key {
		return nil, fault.ErrKeyIsNil
	}
	if nil == search(key, tree.root) { // checked before any traversal
		return nil, fault.ErrKeyNotFound
	}
	if maxDistance < 0 {
		return nil, fault.ErrDistanceIsNegative
	}
	set := make(KeySet)
	pathDistance(key, maxDistance, tree.root, set)
	return set, nil
}

// path phase: descend to the node holding the target key
//
// the return value is the distance of p from the target, derived on
// the unwind as child distance + 1; the target node itself has no
// child on the path and reports a child distance of -1, making its
// own distance 0.  each path node within maxDistance is collected,
// and the sub-tree hanging off the far side of the path (both
// sub-trees below the target) is handed to the fan-out phase
func pathDistance(key Item, maxDistance int, p *Node, set KeySet) int {
	childDistance := -1
	offPath := (*Node)(nil)
	switch p.key.Compare(key) {
	case +1: // p.key > key: target is on the left
		childDistance = pathDistance(key, maxDistance, p.left, set)
		offPath = p.right
	case -1: // p.key < key: target is on the right
		childDistance = pathDistance(key, maxDistance, p.right, set)
		offPath = p.left
	}
	distance := childDistance + 1
	if distance <= maxDistance {
		set.Add(p.key)
	}
	if distance < maxDistance {
		if 0 == distance { // at the target both sides are off the path
			belowDistance(p.left, maxDistance, distance+1, set)
			belowDistance(p.right, maxDistance, distance+1, set)
		} else {
			belowDistance(offPath, maxDistance, distance+1, set)
		}
	}
	return distance
}

// fan-out phase: exhaustive walk down an off-path sub-tree
//
// unlike the path phase the distance of p is already known; recursion
// is pruned as soon as the next level would pass maxDistance
func belowDistance(p *Node, maxDistance int, distance int, set KeySet) {
	if nil == p {
		return
	}
	if distance <= maxDistance {
		set.Add(p.key)
	}
	if distance < maxDistance {
		belowDistance(p.left, maxDistance, distance+1, set)
		belowDistance(p.right, maxDistance, distance+1, set)
	}
}
