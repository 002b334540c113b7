// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand/v2"
	"testing"

	gbtree "github.com/google/btree"
	tbtree "github.com/tidwall/btree"

	"github.com/bitmark-inc/avlset/avl"
)

const benchmarkKeys = 1 << 14

func benchmarkInput() []int {
	r := rand.New(rand.NewPCG(1, 2))
	return r.Perm(benchmarkKeys)
}

func BenchmarkInsertAVL(b *testing.B) {
	keys := benchmarkInput()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		s := avl.New[int]()
		for _, k := range keys {
			s.Insert(k)
		}
	}
}

func BenchmarkInsertGoogleBTree(b *testing.B) {
	keys := benchmarkInput()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tr := gbtree.NewOrderedG[int](32)
		for _, k := range keys {
			tr.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkInsertTidwallBTree(b *testing.B) {
	keys := benchmarkInput()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tr := tbtree.NewBTreeGOptions(func(x, y int) bool {
			return x < y
		}, tbtree.Options{
			Degree:  32,
			NoLocks: true,
		})
		for _, k := range keys {
			tr.Set(k)
		}
	}
}

func BenchmarkInsertEraseAVL(b *testing.B) {
	keys := benchmarkInput()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		s := avl.New[int]()
		for _, k := range keys {
			s.Insert(k)
		}
		for _, k := range keys {
			s.Erase(k)
		}
	}
}

func BenchmarkLowerBoundAVL(b *testing.B) {
	keys := benchmarkInput()
	s := avl.New[int]()
	for _, k := range keys {
		s.Insert(2 * k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		s.LowerBound(keys[i%len(keys)]*2 + 1)
	}
}

func BenchmarkIterateAVL(b *testing.B) {
	s := avl.New[int]()
	for _, k := range benchmarkInput() {
		s.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		n := 0
		for c := s.Begin(); !c.IsEnd(); c.Next() {
			n += 1
		}
		if n != benchmarkKeys {
			b.Fatalf("iterated: %d  expected: %d", n, benchmarkKeys)
		}
	}
}
