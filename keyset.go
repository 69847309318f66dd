// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// KeySet - an unordered collection of unique keys
//
// returned by the neighborhood query; duplicates are impossible as
// tree keys are unique
type KeySet map[Item]struct{}

// Add - put a key into the set
func (set KeySet) Add(key Item) {
	set[key] = struct{}{}
}

// Exists - check to see if a key is in the set
func (set KeySet) Exists(key Item) bool {
	_, ok := set[key]
	return ok
}

// Elements - all keys of the set in no particular order
func (set KeySet) Elements() []Item {
	keys := make([]Item, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	return keys
}
