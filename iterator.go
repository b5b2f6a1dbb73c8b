// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// First - return the node with the lowest value
// this is the end node when the tree is empty
func (tree *Tree[Value]) First() *Node[Value] {
	return tree.sentinel.left
}

// Last - return the node with the highest value
// this is the end node when the tree is empty
func (tree *Tree[Value]) Last() *Node[Value] {
	return tree.sentinel.right
}

// Min - read the lowest value
// returns the value and true, or the zero value and false when the
// tree is empty
func (tree *Tree[Value]) Min() (Value, bool) {
	if nil == tree.root {
		var zero Value
		return zero, false
	}
	return tree.sentinel.left.value, true
}

// Max - read the highest value
// returns the value and true, or the zero value and false when the
// tree is empty
func (tree *Tree[Value]) Max() (Value, bool) {
	if nil == tree.root {
		var zero Value
		return zero, false
	}
	return tree.sentinel.right.value, true
}

// Next - given a node, return the node with the next higher value
//
// stepping past the last element lands on the end node and the end
// node stays on itself
func (node *Node[Value]) Next() *Node[Value] {
	if node.isSentinel() {
		return node
	}
	if nil != node.right {
		return node.successor()
	}
	p := node.parent
	for !p.isSentinel() && p.right == node {
		node = p
		p = p.parent
	}
	return p
}

// Prev - given a node, return the node with the next lower value
//
// stepping back from the end node reaches the last element, stepping
// back from the first element lands on the end node
func (node *Node[Value]) Prev() *Node[Value] {
	if node.isSentinel() {
		return node.right // the cached maximum, self when empty
	}
	if nil != node.left {
		return node.predecessor()
	}
	p := node.parent
	for !p.isSentinel() && p.left == node {
		node = p
		p = p.parent
	}
	return p
}

// All - iterate over the values in ascending order
func (tree *Tree[Value]) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for node := tree.First(); !node.isSentinel(); node = node.Next() {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Backward - iterate over the values in descending order
func (tree *Tree[Value]) Backward() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for node := tree.Last(); !node.isSentinel(); node = node.Prev() {
			if !yield(node.value) {
				return
			}
		}
	}
}
