// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avl"
)

// a clone must hold the same values but share no nodes
func TestCloneSeparateNodes(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	tree := avl.New[int]()
	for _, value := range rnd.Perm(100) {
		tree.Insert(value)
	}

	clone := tree.Clone()
	assert.Equal(t, tree.Count(), clone.Count(), "wrong clone count")
	assert.Nil(t, clone.CheckUp(), "inconsistent clone")

	p := tree.First()
	q := clone.First()
	for !p.IsEnd() {
		assert.Equal(t, p.Value(), q.Value(), "wrong clone item")
		assert.False(t, p == q, "clone shares a node with the original")
		p = p.Next()
		q = q.Next()
	}
	assert.True(t, q.IsEnd(), "clone walk too long")
}

// changes on either side must not leak across to the other
func TestCloneIndependence(t *testing.T) {
	tree := avl.New[int]()
	for i := 1; i <= 50; i += 1 {
		tree.Insert(i)
	}
	clone := tree.Clone()

	for i := 1; i <= 50; i += 2 {
		assert.True(t, tree.Delete(i), "delete failed")
	}
	assert.Equal(t, 25, tree.Count(), "wrong count after deletes")
	assert.Equal(t, 50, clone.Count(), "clone count changed by original deletes")
	for i := 1; i <= 50; i += 2 {
		assert.False(t, clone.Search(i).IsEnd(), "clone lost a value")
	}

	clone.Clear()
	assert.True(t, clone.IsEmpty(), "clone not empty after clear")
	assert.Equal(t, 25, tree.Count(), "original count changed by clone clear")
	assert.False(t, tree.Search(2).IsEnd(), "original lost a value")

	assert.Nil(t, tree.CheckUp(), "inconsistent tree")
	assert.Nil(t, clone.CheckUp(), "inconsistent clone")
}

// a clone keeps the comparator of its original
func TestCloneComparator(t *testing.T) {
	reversed := avl.NewFunc[int](func(a int, b int) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return +1
		default:
			return 0
		}
	})
	for _, value := range []int{3, 1, 2} {
		reversed.Insert(value)
	}

	clone := reversed.Clone()
	clone.Insert(4)
	assert.Equal(t, 4, clone.First().Value(), "clone ignored the reversed order")
	assert.Equal(t, 1, clone.Last().Value(), "clone ignored the reversed order")
	assert.Nil(t, clone.CheckUp(), "inconsistent clone")
}

// cloning an empty tree gives a usable empty tree
func TestCloneEmpty(t *testing.T) {
	tree := avl.New[int]()
	clone := tree.Clone()

	assert.True(t, clone.IsEmpty(), "clone of an empty tree is not empty")
	assert.True(t, clone.First().IsEnd(), "clone first is not the end node")
	assert.Nil(t, clone.CheckUp(), "inconsistent clone")

	clone.Insert(1)
	assert.Equal(t, 1, clone.Count(), "insert into the clone failed")
	assert.True(t, tree.IsEmpty(), "insert into the clone changed the original")
}
