// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - deep copy the whole tree
//
// the copy shares the comparator but not a single node with the
// original, so changes to one tree can never show up in the other
func (tree *Tree[Value]) Clone() *Tree[Value] {
	clone := NewFunc[Value](tree.compare)
	if nil == tree.root {
		return clone
	}
	clone.root = clone.cloneSubtree(tree.root, &clone.sentinel)
	clone.count = tree.count
	clone.sentinel.left = clone.root.leftmost()
	clone.sentinel.right = clone.root.rightmost()
	return clone
}

// internal: recursive sub-tree copy keeping shape and heights
// the receiver is the tree being built, the source is read only
func (tree *Tree[Value]) cloneSubtree(src *Node[Value], parent *Node[Value]) *Node[Value] {
	if nil == src {
		return nil
	}
	node := tree.newNode(src.value)
	node.parent = parent
	node.height = src.height
	node.left = tree.cloneSubtree(src.left, node)
	node.right = tree.cloneSubtree(src.right, node)
	return node
}
