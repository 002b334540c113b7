// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlset/fault"
)

// Check - verify the internal consistency of the tree
//
// checks key order and uniqueness, parent pointers, sizes, heights,
// balance and that iteration visits every node; returns the first
// problem found as a wrapped fault.InvalidError
func (s *Set[K]) Check() error {
	if nil == s.root {
		return nil
	}
	if nil != s.root.up {
		return fmt.Errorf("root: %v: %w", s.root.key, fault.ErrBadParent)
	}
	if err := s.check(s.root, nil, nil); nil != err {
		return err
	}

	n := 0
	for p := s.root.minimum(); nil != p; p = p.next() {
		n += 1
	}
	if n != s.root.size {
		return fmt.Errorf("visited: %d  size: %d: %w", n, s.root.size, fault.ErrBadCount)
	}
	return nil
}

// internal: check a sub-tree whose keys must lie strictly between
// the optional bounds
func (s *Set[K]) check(p *node[K], lo *K, hi *K) error {
	if nil != lo && !s.less(*lo, p.key) {
		if !s.less(p.key, *lo) {
			return fmt.Errorf("key: %v: %w", p.key, fault.ErrDuplicateKey)
		}
		return fmt.Errorf("key: %v  below: %v: %w", p.key, *lo, fault.ErrBadOrder)
	}
	if nil != hi && !s.less(p.key, *hi) {
		if !s.less(*hi, p.key) {
			return fmt.Errorf("key: %v: %w", p.key, fault.ErrDuplicateKey)
		}
		return fmt.Errorf("key: %v  above: %v: %w", p.key, *hi, fault.ErrBadOrder)
	}

	if nil != p.left {
		if p.left.up != p {
			return fmt.Errorf("key: %v  left: %v: %w", p.key, p.left.key, fault.ErrBadParent)
		}
		if err := s.check(p.left, lo, &p.key); nil != err {
			return err
		}
	}
	if nil != p.right {
		if p.right.up != p {
			return fmt.Errorf("key: %v  right: %v: %w", p.key, p.right.key, fault.ErrBadParent)
		}
		if err := s.check(p.right, &p.key, hi); nil != err {
			return err
		}
	}

	if n := 1 + size(p.left) + size(p.right); n != p.size {
		return fmt.Errorf("key: %v  size: %d  expected: %d: %w", p.key, p.size, n, fault.ErrBadSize)
	}
	if h := 1 + max(height(p.left), height(p.right)); h != p.height {
		return fmt.Errorf("key: %v  height: %d  expected: %d: %w", p.key, p.height, h, fault.ErrBadHeight)
	}
	if bf := balanceFactor(p); bf < -1 || bf > 1 {
		return fmt.Errorf("key: %v  balance: %+d: %w", p.key, bf, fault.ErrUnbalanced)
	}
	return nil
}
