// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Cursor - position in a set: either a key or the end position
// which is one past the highest key
//
// the zero value is not usable, obtain cursors from a Set
type Cursor[K any] struct {
	set  *Set[K]
	node *node[K] // nil at the end position
}

// Begin - cursor at the lowest key, End() for an empty set
func (s *Set[K]) Begin() Cursor[K] {
	return s.cursor(s.root.minimum())
}

// End - cursor one past the highest key
func (s *Set[K]) End() Cursor[K] {
	return Cursor[K]{set: s}
}

func (s *Set[K]) cursor(p *node[K]) Cursor[K] {
	return Cursor[K]{set: s, node: p}
}

// IsEnd - true if cursor is at the end position
func (c Cursor[K]) IsEnd() bool {
	return nil == c.live()
}

// Key - the key at the cursor, empty at the end position
func (c Cursor[K]) Key() g.Option[K] {
	p := c.live()
	if nil == p {
		return g.None[K]()
	}
	return g.Some(p.key)
}

// Equal - true if both cursors are on the same key of the same set,
// or both are at the end of the same set
func (c Cursor[K]) Equal(other Cursor[K]) bool {
	return c.set == other.set && c.live() == other.live()
}

// Next - move to the next higher key, or to the end position after
// the highest key; does nothing at the end position
//
// returns true if the cursor is on a key after moving
func (c *Cursor[K]) Next() bool {
	p := c.live()
	if nil == p {
		c.node = nil
		return false
	}
	c.node = p.next()
	return nil != c.node
}

// Prev - move to the next lower key; from the end position move to
// the highest key
//
// returns false and leaves the cursor unchanged if there is no lower
// key (cursor on the lowest key, or end position of an empty set)
func (c *Cursor[K]) Prev() bool {
	p := c.live()
	if nil == p {
		c.node = nil
		if nil == c.set {
			return false
		}
		last := c.set.root.maximum()
		if nil == last {
			return false
		}
		c.node = last
		return true
	}
	q := p.prev()
	if nil == q {
		return false
	}
	c.node = q
	return true
}

// a node released by erase counts as the end position
func (c Cursor[K]) live() *node[K] {
	if nil == c.node || 0 == c.node.size {
		return nil
	}
	return c.node
}

// Until - sequence of keys from the cursor up to but not including
// the end cursor, or to the highest key if end is never reached
func (c Cursor[K]) Until(end Cursor[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		stop := end.live()
		for p := c.live(); nil != p && p != stop; p = p.next() {
			if !yield(p.key) {
				return
			}
		}
	}
}

// All - sequence of all keys in ascending order
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := s.root.minimum(); nil != p; p = p.next() {
			if !yield(p.key) {
				return
			}
		}
	}
}

// Backward - sequence of all keys in descending order
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := s.root.maximum(); nil != p; p = p.prev() {
			if !yield(p.key) {
				return
			}
		}
	}
}

// internal: lowest node in a sub-tree
func (p *node[K]) minimum() *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K]) maximum() *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: node with the next highest key or nil if no more nodes
func (p *node[K]) next() *node[K] {
	if nil != p.right {
		return p.right.minimum()
	}
	for nil != p.up && p.up.right == p {
		p = p.up
	}
	return p.up
}

// internal: node with the next lowest key or nil if no more nodes
func (p *node[K]) prev() *node[K] {
	if nil != p.left {
		return p.left.maximum()
	}
	for nil != p.up && p.up.left == p {
		p = p.up
	}
	return p.up
}
