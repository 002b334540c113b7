// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered set of keys held in an AVL balanced tree
// with the addition of parent pointers to allow iteration through the
// nodes in either direction
//
// Note: an individual set is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node keeps the size and height of its sub-tree, so balancing
// is done by recomputing these from the children after each change
// rather than by carrying balance factors up the tree.  The sizes
// also give O(log n) indexing by position.
//
// Keys are unique: inserting an existing key and erasing a missing
// key are both ignored.  Ordering is given by a less function, two
// keys are equal when neither is less than the other.
//
// A Cursor refers either to a node or to the end position; the end
// position does not depend on any node so it stays valid across
// updates.  Nodes never move between keys, so a cursor stays on its
// key while other keys are inserted or erased; a cursor whose own key
// is erased behaves as the end position.
package avl
