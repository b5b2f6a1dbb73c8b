// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avl/fault"
)

// CheckUp - verify every structural invariant of the tree
// returns nil when consistent or the first fault found
func (tree *Tree[Value]) CheckUp() error {
	reachable, err := tree.checkSubtree(tree.root, &tree.sentinel)
	if nil != err {
		return err
	}
	if reachable != tree.count {
		return fault.ErrWrongCount
	}

	if nil == tree.root {
		if &tree.sentinel != tree.sentinel.left || &tree.sentinel != tree.sentinel.right {
			return fault.ErrWrongExtremeCache
		}
		return nil
	}
	if tree.sentinel.left != tree.root.leftmost() || tree.sentinel.right != tree.root.rightmost() {
		return fault.ErrWrongExtremeCache
	}

	// walking the iterator also proves the values are in order
	for node := tree.First(); ; {
		next := node.Next()
		if next.isSentinel() {
			return nil
		}
		if tree.compare(node.value, next.value) >= 0 {
			return fault.ErrOutOfOrder
		}
		node = next
	}
}

// internal: recursive structure check, counts the reachable nodes
func (tree *Tree[Value]) checkSubtree(node *Node[Value], parent *Node[Value]) (int, error) {
	if nil == node {
		return 0, nil
	}
	if node.parent != parent {
		return 0, fault.ErrBrokenParentLink
	}
	nl, err := tree.checkSubtree(node.left, node)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkSubtree(node.right, node)
	if nil != err {
		return 0, err
	}
	if node.height != 1+max(node.leftHeight(), node.rightHeight()) {
		return 0, fault.ErrInvalidHeight
	}
	if factor := node.balanceFactor(); factor < -1 || factor > 1 {
		return 0, fault.ErrUnbalancedNode
	}
	return nl + nr + 1, nil
}
