// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree with parent
// pointers and a sentinel end node to allow iteration through the
// nodes in both directions
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each tree carries one sentinel node that acts as the position one
// past the last element.  The sentinel is its own parent, which is
// the test navigation routines use to detect it, and its child links
// cache the current minimum and maximum so that First and Last are
// constant time.  Real nodes never link down to the sentinel, so the
// recursive routines walk the child links without any special cases.
//
// Balance is kept by storing the height of every node, a node is out
// of balance when its sub-tree heights differ by more than one and is
// repaired by single or double rotations on the way back up to the
// root.
//
// An insert with an already present value does not overwrite, it
// returns the existing node and a false flag.  Use Replace to store
// new data for an existing value.  Delete never copies values between
// nodes so other nodes keep a constant address while the tree is
// re-balanced.
package avl
