// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (tree *Tree[Value]) Print(printDetail bool) int {
	return printTree(tree.root, "", root, printDetail)
}

// internal print - returns the maximum depth of the tree
func printTree[Value any](tree *Node[Value], prefix string, br branch, printDetail bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(tree.right, prefix+t, right, printDetail)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if !tree.parent.isSentinel() {
		up = tree.parent.value
	}
	if printDetail {
		fmt.Printf("%v ^%v %+2d/%d\n", tree.value, up, tree.balanceFactor(), tree.height)
	} else {
		fmt.Printf("%v ^%v\n", tree.value, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(tree.left, prefix+t, left, printDetail)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
