// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	g "github.com/anacrolix/generics"
)

// Get - key at a zero based position in ascending order
func (s *Set[K]) Get(index int) g.Option[K] {
	p := s.At(index).node
	if nil == p {
		return g.None[K]()
	}
	return g.Some(p.key)
}

// At - cursor at a zero based position, End() if out of range
func (s *Set[K]) At(index int) Cursor[K] {
	if index < 0 || index >= s.Len() {
		return s.End()
	}
	return s.cursor(get(index, s.root))
}

func get[K any](index int, p *node[K]) *node[K] {
	if nil == p {
		return nil
	}

	nl := size(p.left)

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}
