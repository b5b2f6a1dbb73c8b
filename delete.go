// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove the element equal to value
// reports whether an element was removed
func (tree *Tree[Value]) Delete(value Value) bool {
	node := tree.search(value, tree.root)
	if nil == node {
		return false
	}
	tree.DeleteNode(node)
	return true
}

// DeleteNode - remove one specific node from the tree
//
// a no-op for nil or the end node, the removed node is recycled and
// must not be used afterwards, every other node keeps its address
func (tree *Tree[Value]) DeleteNode(node *Node[Value]) {
	if nil == node || node.isSentinel() {
		return
	}

	if 1 == tree.count {
		tree.root = nil
		tree.count = 0
		tree.sentinel.left = &tree.sentinel
		tree.sentinel.right = &tree.sentinel
		tree.freeNode(node)
		return
	}

	// a replacement extreme is found while the node is still linked
	if node == tree.sentinel.left {
		tree.sentinel.left = node.Next()
	} else if node == tree.sentinel.right {
		tree.sentinel.right = node.Prev()
	}

	// trade places with the in order successor so that the node to
	// unlink has at most one child
	if nil != node.left && nil != node.right {
		tree.swapNodes(node, node.successor())
	}

	child := node.left
	if nil == child {
		child = node.right
	}

	parent := node.parent
	if parent.isSentinel() {
		// the root with a single child
		tree.root = child
		child.parent = parent
	} else {
		if parent.left == node {
			parent.left = child
		} else {
			parent.right = child
		}
		if nil != child {
			child.parent = parent
		}
		parent.iterativeHeightUpdate()
		tree.rebalance(parent)
	}

	tree.count -= 1
	tree.freeNode(node)
}

// DeleteMin - remove the smallest element
// returns the removed value and true, or the zero value and false
// when the tree is empty
func (tree *Tree[Value]) DeleteMin() (Value, bool) {
	if nil == tree.root {
		var zero Value
		return zero, false
	}
	node := tree.sentinel.left
	value := node.value
	tree.DeleteNode(node)
	return value, true
}

// DeleteMax - remove the largest element
// returns the removed value and true, or the zero value and false
// when the tree is empty
func (tree *Tree[Value]) DeleteMax() (Value, bool) {
	if nil == tree.root {
		var zero Value
		return zero, false
	}
	node := tree.sentinel.right
	value := node.value
	tree.DeleteNode(node)
	return value, true
}

// Clear - remove every element, all nodes are recycled for reuse
// the end node keeps its identity across a clear
func (tree *Tree[Value]) Clear() {
	tree.release(tree.root)
	tree.root = nil
	tree.count = 0
	tree.sentinel.left = &tree.sentinel
	tree.sentinel.right = &tree.sentinel
}

// internal: post order recycle of a whole sub-tree
func (tree *Tree[Value]) release(node *Node[Value]) {
	if nil == node {
		return
	}
	tree.release(node.left)
	tree.release(node.right)
	tree.freeNode(node)
}

// internal: exchange the link and height state of two nodes
//
// the values stay with their nodes so an outstanding reference to
// either node keeps pointing at the same element, only the two
// positions within the tree are exchanged
func (tree *Tree[Value]) swapNodes(a *Node[Value], b *Node[Value]) {
	a.parent, b.parent = b.parent, a.parent
	a.left, b.left = b.left, a.left
	a.right, b.right = b.right, a.right
	a.height, b.height = b.height, a.height

	// a directly linked pair ends up self linked, repair both ends
	if a == a.parent {
		a.parent = b
		if b == b.left {
			b.left = a
		} else {
			b.right = a
		}
	} else if b == b.parent {
		b.parent = a
		if a == a.left {
			a.left = b
		} else {
			a.right = b
		}
	}

	// point the surrounding nodes back at the pair
	if p := a.parent; b != p {
		if p.isSentinel() {
			tree.root = a
		} else if p.left == b {
			p.left = a
		} else {
			p.right = a
		}
	}
	if p := b.parent; a != p {
		if p.isSentinel() {
			tree.root = b
		} else if p.left == a {
			p.left = b
		} else {
			p.right = b
		}
	}

	if nil != a.left && b != a.left {
		a.left.parent = a
	}
	if nil != a.right && b != a.right {
		a.right.parent = a
	}
	if nil != b.left && a != b.left {
		b.left.parent = b
	}
	if nil != b.right && a != b.right {
		b.right.parent = b
	}
}
