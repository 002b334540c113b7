// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - removes a specific key from the set
// returns false if the key was not present
func (s *Set[K]) Erase(key K) bool {
	removed := false
	s.root, removed = s.erase(key, s.root)
	return removed
}

// internal delete routine, returns the possibly updated sub-tree root
func (s *Set[K]) erase(key K, p *node[K]) (*node[K], bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch {
	case s.less(key, p.key):
		p.left, removed = s.erase(key, p.left)
	case s.less(p.key, key):
		p.right, removed = s.erase(key, p.right)
	default: // found: delete p
		return splice(p), true
	}
	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// remove a node from the tree and return the sub-tree that replaces
// it, already linked to the removed node's parent
func splice[K any](q *node[K]) *node[K] {
	var r *node[K]
	switch {
	case nil == q.left && nil == q.right:
		r = nil
	case nil == q.left:
		r = q.right
	case nil == q.right:
		r = q.left
	default:
		// the successor leaves the right sub-tree and takes q's place
		r = q.right.minimum()
		r.right = eraseMinimum(q.right)
		if nil != r.right {
			r.right.up = r
		}
		r.left = q.left
		r.left.up = r
	}
	if nil != r {
		r.up = q.up
		r = rebalance(r)
	}
	q.release()
	return r
}

// detach the lowest node of a sub-tree, rebalancing each node on the
// way back up; returns the remaining sub-tree
//
// the detached node is left with no links so it can be reused
func eraseMinimum[K any](p *node[K]) *node[K] {
	if nil == p.left {
		r := p.right
		if nil != r {
			r.up = p.up
		}
		p.right = nil
		p.up = nil
		return r
	}
	p.left = eraseMinimum(p.left)
	return rebalance(p)
}
