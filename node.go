// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - an element of a tree
type Node[Value any] struct {
	left   *Node[Value] // left sub-tree
	right  *Node[Value] // right sub-tree
	parent *Node[Value] // up link, the sentinel above the root, self for the sentinel
	value  Value        // data for this element
	height uint         // one more than the taller sub-tree, one for a leaf
}

// Value - read the value stored in a node
//
// a nil node and the end node hold no element so both read as the
// zero value
func (node *Node[Value]) Value() Value {
	if nil == node || node.isSentinel() {
		var zero Value
		return zero
	}
	return node.value
}

// SetValue - overwrite the value stored in a node
//
// the new value must order exactly like the old one relative to all
// other elements, the tree is not re-sorted
func (node *Node[Value]) SetValue(value Value) {
	if nil == node || node.isSentinel() {
		return
	}
	node.value = value
}

// IsEnd - true only for the end node of a tree
func (node *Node[Value]) IsEnd() bool {
	return node.isSentinel()
}

// Height - one more than the taller sub-tree, one for a leaf
// a nil node and the end node report zero
func (node *Node[Value]) Height() uint {
	if nil == node || node.isSentinel() {
		return 0
	}
	return node.height
}

// BalanceFactor - right sub-tree height minus left sub-tree height
func (node *Node[Value]) BalanceFactor() int {
	if nil == node || node.isSentinel() {
		return 0
	}
	return node.balanceFactor()
}

// internal: the sentinel is the only node that is its own parent
func (node *Node[Value]) isSentinel() bool {
	return nil != node && node == node.parent
}

// internal: height of the left sub-tree, zero when absent
func (node *Node[Value]) leftHeight() uint {
	if nil == node.left {
		return 0
	}
	return node.left.height
}

// internal: height of the right sub-tree, zero when absent
func (node *Node[Value]) rightHeight() uint {
	if nil == node.right {
		return 0
	}
	return node.right.height
}

// internal: signed sub-tree height difference
func (node *Node[Value]) balanceFactor() int {
	return int(node.rightHeight()) - int(node.leftHeight())
}

// internal: lowest node in a sub-tree
func (node *Node[Value]) leftmost() *Node[Value] {
	for nil != node.left {
		node = node.left
	}
	return node
}

// internal: highest node in a sub-tree
func (node *Node[Value]) rightmost() *Node[Value] {
	for nil != node.right {
		node = node.right
	}
	return node
}

// internal: next position in order, limited to this sub-tree
// returns the node itself when there is no right branch to descend
func (node *Node[Value]) successor() *Node[Value] {
	if nil == node.right {
		return node
	}
	return node.right.leftmost()
}

// internal: previous position in order, limited to this sub-tree
// returns the node itself when there is no left branch to descend
func (node *Node[Value]) predecessor() *Node[Value] {
	if nil == node.left {
		return node
	}
	return node.left.rightmost()
}

// internal: recompute the height here and up the parent chain
//
// the climb stops early as soon as one recomputation leaves a height
// unchanged, nothing further up can be affected after that
func (node *Node[Value]) iterativeHeightUpdate() {
	node.height = 1 + max(node.leftHeight(), node.rightHeight())
	for p := node.parent; nil != p && !p.isSentinel(); p = p.parent {
		h := 1 + max(p.leftHeight(), p.rightHeight())
		if h == p.height {
			break
		}
		p.height = h
	}
}
