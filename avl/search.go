// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - cursor at a specific key, or End() if it is not present
func (s *Set[K]) Find(key K) Cursor[K] {
	return s.cursor(s.search(key, s.root))
}

// Contains - true if the key is present
func (s *Set[K]) Contains(key K) bool {
	return nil != s.search(key, s.root)
}

func (s *Set[K]) search(key K, p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	switch {
	case s.less(key, p.key):
		return s.search(key, p.left)
	case s.less(p.key, key):
		return s.search(key, p.right)
	default:
		return p
	}
}

// LowerBound - cursor at the first key that is not less than key, or
// End() if all keys are less
func (s *Set[K]) LowerBound(key K) Cursor[K] {
	return s.cursor(s.lowerBound(key, s.root))
}

func (s *Set[K]) lowerBound(key K, p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	switch {
	case s.less(key, p.key):
		// p qualifies unless something smaller on the left also does
		if r := s.lowerBound(key, p.left); nil != r {
			return r
		}
		return p
	case s.less(p.key, key):
		return s.lowerBound(key, p.right)
	default:
		return p
	}
}

// Rank - zero based position of a key in ascending order
// returns false if the key is not present
func (s *Set[K]) Rank(key K) (int, bool) {
	index := 0
	for p := s.root; nil != p; {
		switch {
		case s.less(key, p.key):
			p = p.left
		case s.less(p.key, key):
			index += size(p.left) + 1
			p = p.right
		default:
			return index + size(p.left), true
		}
	}
	return -1, false
}
