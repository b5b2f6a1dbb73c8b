// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: raw single rotation promoting the right child
//
// the promoted node is left detached, the caller must link it back
// into the slot the rotated node came from
func (node *Node[Value]) rotateLeft() *Node[Value] {
	promoted := node.right
	node.right = promoted.left
	if nil != node.right {
		node.right.parent = node
	}
	promoted.left = node
	node.parent = promoted
	promoted.parent = nil
	node.iterativeHeightUpdate()
	return promoted
}

// internal: raw single rotation promoting the left child
//
// mirror of rotateLeft
func (node *Node[Value]) rotateRight() *Node[Value] {
	promoted := node.left
	node.left = promoted.right
	if nil != node.left {
		node.left.parent = node
	}
	promoted.right = node
	node.parent = promoted
	promoted.parent = nil
	node.iterativeHeightUpdate()
	return promoted
}

// internal: single left rotation linked back into the parent
func (tree *Tree[Value]) smallLeftRotate(node *Node[Value]) *Node[Value] {
	parent := node.parent
	promoted := node.rotateLeft()
	tree.linkAfterRotate(promoted, node, parent)
	return promoted
}

// internal: single right rotation linked back into the parent
func (tree *Tree[Value]) smallRightRotate(node *Node[Value]) *Node[Value] {
	parent := node.parent
	promoted := node.rotateRight()
	tree.linkAfterRotate(promoted, node, parent)
	return promoted
}

// internal: put a promoted node into the slot its sub-tree came from
//
// a sub-tree whose parent is the sentinel is the whole tree, so the
// promoted node becomes the root
func (tree *Tree[Value]) linkAfterRotate(promoted *Node[Value], node *Node[Value], parent *Node[Value]) {
	promoted.parent = parent
	if parent.isSentinel() {
		tree.root = promoted
		return
	}
	if parent.left == node {
		parent.left = promoted
	} else {
		parent.right = promoted
	}
	parent.iterativeHeightUpdate()
}

// internal: double rotation for a right child leaning left
func (tree *Tree[Value]) bigLeftRotate(node *Node[Value]) *Node[Value] {
	tree.smallRightRotate(node.right)
	return tree.smallLeftRotate(node)
}

// internal: double rotation for a left child leaning right
func (tree *Tree[Value]) bigRightRotate(node *Node[Value]) *Node[Value] {
	tree.smallLeftRotate(node.left)
	return tree.smallRightRotate(node)
}

// internal: repair one node, choosing the rotation by which way the
// taller child leans
func (tree *Tree[Value]) balanceNode(node *Node[Value]) *Node[Value] {
	switch factor := node.balanceFactor(); {
	case factor > 1:
		if node.right.balanceFactor() >= 0 {
			return tree.smallLeftRotate(node)
		}
		return tree.bigLeftRotate(node)
	case factor < -1:
		if node.left.balanceFactor() <= 0 {
			return tree.smallRightRotate(node)
		}
		return tree.bigRightRotate(node)
	default:
		return node
	}
}

// internal: repair every node from here back up to the root
//
// only nodes on the path from a structural change to the root can be
// out of balance, so one climb restores the whole tree
func (tree *Tree[Value]) rebalance(node *Node[Value]) {
	current := node
	for nil != current && !current.isSentinel() {
		current = tree.balanceNode(current).parent
	}
}
