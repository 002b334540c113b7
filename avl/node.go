// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[K any] struct {
	left   *node[K] // left sub-tree
	right  *node[K] // right sub-tree
	up     *node[K] // points to parent node
	key    K        // key part for ordering
	size   int      // nodes in this sub-tree including this one
	height int      // longest downward path in edges, leaf is zero
}

// create a new leaf node
func newNode[K any](key K, up *node[K]) *node[K] {
	return &node[K]{
		key:    key,
		up:     up,
		size:   1,
		height: 0,
	}
}

// detach a node that has been removed from the tree
func (p *node[K]) release() {
	p.left = nil
	p.right = nil
	p.up = nil
	p.size = 0
}

// copy a sub-tree keeping its shape
func (p *node[K]) clone(up *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	n := &node[K]{
		key:    p.key,
		up:     up,
		size:   p.size,
		height: p.height,
	}
	n.left = p.left.clone(n)
	n.right = p.right.clone(n)
	return n
}
