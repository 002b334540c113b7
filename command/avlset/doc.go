// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Ordered set exerciser
//
// This program holds a single ordered set of integer or string keys
// and applies commands to it.  Commands come from the argument list,
// separated by ";", or when there are no arguments, one per line from
// standard input.  Each command prints one line of result, except
// "print" which draws the tree.
//
//   avlset insert 5 3 8 1 4 7 9 \; list \; lower-bound 6 \; print
//
// A Lua configuration file may set the key type, detail printing,
// checking of the tree after every update and the log files.
package main
