// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding a specific value
// returns the end node if the value is not present
func (tree *Tree[Value]) Search(value Value) *Node[Value] {
	node := tree.search(value, tree.root)
	if nil == node {
		return &tree.sentinel
	}
	return node
}

// Contains - true if a value is present in the tree
func (tree *Tree[Value]) Contains(value Value) bool {
	return nil != tree.search(value, tree.root)
}

// internal: recursive comparator walk down the tree
func (tree *Tree[Value]) search(value Value, node *Node[Value]) *Node[Value] {
	if nil == node {
		return nil
	}

	switch c := tree.compare(node.value, value); {
	case c > 0: // node.value > value
		return tree.search(value, node.left)
	case c < 0: // node.value < value
		return tree.search(value, node.right)
	default:
		return node
	}
}
