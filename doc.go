// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avltree - an AVL balanced binary search tree
//
// Each node caches its subtree height and balance factor; both are
// recomputed on the unwind of every insert and remove, and a rotation
// (single or double) is applied wherever the balance factor leaves
// the range [-1, 1].
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are unique: inserting an already present key is a no-op.  In
// addition to the usual insert/remove/get operations the tree
// supports a bounded neighborhood query returning every key within a
// given tree-edge distance of a stored key.
package avltree
