// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// an absent sub-tree is one level below a leaf
func height[K any](p *node[K]) int {
	if nil == p {
		return -1
	}
	return p.height
}

func size[K any](p *node[K]) int {
	if nil == p {
		return 0
	}
	return p.size
}

// positive when the left side is taller
func balanceFactor[K any](p *node[K]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute size and height from the immediate children only
func pull[K any](p *node[K]) {
	if nil == p {
		return
	}
	p.size = 1 + size(p.left) + size(p.right)
	p.height = 1 + max(height(p.left), height(p.right))
}

// single rotation: p moves down to the left and its right child
// takes its place, returns the new sub-tree root
//
//	    p              r
//	   / \            / \
//	  a   r    →     p   c
//	     / \        / \
//	    b   c      a   b
func rotateLeft[K any](p *node[K]) *node[K] {
	r := p.right
	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}
	r.left = p
	r.up = p.up
	p.up = r

	pull(p)
	pull(r)
	return r
}

// single rotation: p moves down to the right and its left child
// takes its place, returns the new sub-tree root
func rotateRight[K any](p *node[K]) *node[K] {
	l := p.left
	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}
	l.right = p
	l.up = p.up
	p.up = l

	pull(p)
	pull(l)
	return l
}

// restore the balance of a sub-tree whose children are balanced and
// differ in height by at most two, returns the new sub-tree root
//
// the root's up pointer is preserved so the caller only needs to
// store the result in its child slot
func rebalance[K any](p *node[K]) *node[K] {
	switch bf := balanceFactor(p); {
	case bf < -1: // right side is too tall
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		p = rotateLeft(p)
	case bf > 1: // left side is too tall
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		p = rotateRight(p)
	}
	pull(p)
	return p
}
