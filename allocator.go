// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// nodes are recycled on a per tree free list, the parent link doubles
// as the free list pointer, no lock is needed as a tree is single
// threaded by contract

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[Value]) newNode(value Value) *Node[Value] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &Node[Value]{
			value:  value,
			height: 1,
		}
	}
	node := tree.pool
	tree.pool = node.parent
	node.parent = nil // ensure freelist pointer is cleared
	node.left = nil
	node.right = nil
	node.value = value
	node.height = 1
	tree.freeNodes -= 1
	return node
}

// reclaim a node and keep it in a pool
func (tree *Tree[Value]) freeNode(node *Node[Value]) {
	var zero Value

	node.parent = tree.pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.value = zero // drop any references held by the value
	node.height = 0
	tree.freeNodes += 1

	tree.pool = node
}
