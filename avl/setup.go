// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Set - type to hold the root node of a tree and the key ordering
type Set[K any] struct {
	root *node[K]
	less func(a, b K) bool
}

// New - create an initially empty set ordered by the < operator
func New[K constraints.Ordered]() *Set[K] {
	return NewFunc(func(a, b K) bool {
		return a < b
	})
}

// NewFunc - create an initially empty set ordered by a less function
//
// less must be a strict weak ordering
func NewFunc[K any](less func(a, b K) bool) *Set[K] {
	return &Set[K]{
		root: nil,
		less: less,
	}
}

// Of - create a set from a list of keys, duplicates are dropped
func Of[K constraints.Ordered](keys ...K) *Set[K] {
	s := New[K]()
	for _, key := range keys {
		s.Insert(key)
	}
	return s
}

// FromSeq - create a set from a sequence of keys
//
// use s.All() or a slices.Values() as the sequence to copy a range
func FromSeq[K any](seq iter.Seq[K], less func(a, b K) bool) *Set[K] {
	s := NewFunc(less)
	for key := range seq {
		s.Insert(key)
	}
	return s
}

// Clone - deep copy of the set, the new tree has the same shape as
// the original but shares no nodes with it
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{
		root: s.root.clone(nil),
		less: s.less,
	}
}

// Assign - replace the contents and ordering of the set with a copy
// of another set
func (s *Set[K]) Assign(other *Set[K]) {
	if s == other {
		return
	}
	s.root = other.root.clone(nil)
	s.less = other.less
}

// Clear - remove all keys
//
// any outstanding cursors are invalid after this
func (s *Set[K]) Clear() {
	s.root = nil
}

// IsEmpty - true if set contains no keys
func (s *Set[K]) IsEmpty() bool {
	return nil == s.root
}

// Len - number of keys currently in the set
func (s *Set[K]) Len() int {
	return size(s.root)
}

// Height - height of the tree in edges, zero for an empty set
func (s *Set[K]) Height() int {
	if nil == s.root {
		return 0
	}
	return s.root.height
}
