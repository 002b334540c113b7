// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Fprint - write an ASCII graphic representation of the tree, the
// highest keys at the top; returns the number of levels
func (s *Set[K]) Fprint(w io.Writer, printDetail bool) int {
	return printTree(w, s.root, "", root, printDetail)
}

// internal print - returns the maximum depth of the tree
func printTree[K any](w io.Writer, p *node[K], prefix string, br branch, printDetail bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, printDetail)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}
	if printDetail {
		fmt.Fprintf(w, "%v ^%v %+d h:%d n:%d\n", p.key, up, balanceFactor(p), p.height, p.size)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", p.key, up)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, printDetail)
	}
	return 1 + max(rd, ld)
}
