// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key to the set
// returns false if an equal key was already present, in which case
// the set is unchanged
func (s *Set[K]) Insert(key K) bool {
	added := false
	s.root, added = s.insert(key, s.root, nil)
	return added
}

// internal routine for insert, returns the possibly updated sub-tree
// root
func (s *Set[K]) insert(key K, p *node[K], up *node[K]) (*node[K], bool) {
	if nil == p { // insert new node
		return newNode(key, up), true
	}
	added := false
	switch {
	case s.less(key, p.key):
		p.left, added = s.insert(key, p.left, p)
	case s.less(p.key, key):
		p.right, added = s.insert(key, p.right, p)
	default: // already present
		return p, false
	}
	if !added {
		return p, false
	}
	return rebalance(p), true
}
