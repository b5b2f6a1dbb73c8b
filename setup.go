// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Tree - type to hold the root node and the sentinel of a tree
//
// a tree must be created by New or NewFunc and must not be copied
// afterwards, the sentinel is linked to by address
type Tree[Value any] struct {
	root     *Node[Value]
	sentinel Node[Value]
	count    int
	compare  func(a, b Value) int

	pool       *Node[Value] // linked list of reclaimed nodes
	totalNodes int          // total nodes created
	freeNodes  int          // number of nodes in the pool
}

// New - create an initially empty tree using the natural ordering of
// the value type
func New[Value constraints.Ordered]() *Tree[Value] {
	return NewFunc[Value](func(a, b Value) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		default:
			return 0
		}
	})
}

// NewFunc - create an initially empty tree ordered by a three way
// comparator
//
// compare must return negative for a < b, zero for equal values and
// positive for a > b, and must be total and free of side effects
func NewFunc[Value any](compare func(a, b Value) int) *Tree[Value] {
	tree := &Tree[Value]{
		root:    nil,
		count:   0,
		compare: compare,
	}
	tree.sentinel.parent = &tree.sentinel
	tree.sentinel.left = &tree.sentinel
	tree.sentinel.right = &tree.sentinel
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[Value]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[Value]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[Value]) Root() *Node[Value] {
	return tree.root
}

// End - return the node one past the last element
//
// the end node compares equal for the whole life of the tree and must
// never have its value read
func (tree *Tree[Value]) End() *Node[Value] {
	return &tree.sentinel
}
