// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a value to the tree
// returns the node holding the value and true for a new element, or
// the already present node and false, the tree is then unchanged
func (tree *Tree[Value]) Insert(value Value) (*Node[Value], bool) {
	if existing := tree.search(value, tree.root); nil != existing {
		return existing, false
	}

	node := tree.newNode(value)

	if nil == tree.root {
		node.parent = &tree.sentinel
		tree.root = node
		tree.sentinel.left = node
		tree.sentinel.right = node
		tree.count = 1
		return node, true
	}

	// a new extreme moves the cached minimum or maximum
	if tree.compare(value, tree.sentinel.left.value) < 0 {
		tree.sentinel.left = node
	} else if tree.compare(value, tree.sentinel.right.value) > 0 {
		tree.sentinel.right = node
	}

	parent := tree.root
attach:
	for {
		if tree.compare(parent.value, value) > 0 {
			if nil == parent.left {
				parent.left = node
				break attach
			}
			parent = parent.left
		} else {
			if nil == parent.right {
				parent.right = node
				break attach
			}
			parent = parent.right
		}
	}
	node.parent = parent

	node.iterativeHeightUpdate()
	tree.rebalance(parent)
	tree.count += 1
	return node, true
}

// Replace - store value over an equal element already in the tree
// the node keeps its address, returns the node and true on a match or
// the end node and false leaving the tree unchanged
func (tree *Tree[Value]) Replace(value Value) (*Node[Value], bool) {
	node := tree.search(value, tree.root)
	if nil == node {
		return &tree.sentinel, false
	}
	node.value = value
	return node, true
}
