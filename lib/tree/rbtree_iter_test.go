package tree

import (
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorAscendingWalk(t *testing.T) {
	tree := NewRBTree[int64]()
	keys := []int64{52, 47, 3, 35, 24}
	for _, key := range keys {
		require.True(t, tree.Insert(key))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	it := tree.Begin()
	for _, want := range keys {
		require.True(t, it.Valid())
		require.Equal(t, want, it.Key())
		it.Next()
	}
	require.False(t, it.Valid())
}

func TestIteratorDescendingWalkFromEnd(t *testing.T) {
	tree := NewRBTree[int64]()
	keys := []int64{52, 47, 3, 35, 24}
	for _, key := range keys {
		require.True(t, tree.Insert(key))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	// Decrementing the past-the-end position yields the maximum.
	it := tree.End()
	require.False(t, it.Valid())
	for i := len(keys) - 1; i >= 0; i-- {
		it.Prev()
		require.True(t, it.Valid())
		require.Equal(t, keys[i], it.Key())
	}
}

func TestIteratorBidirectional(t *testing.T) {
	tree := NewRBTree[int64]()
	for i := int64(0); i < 32; i++ {
		require.True(t, tree.Insert(i * 2))
	}

	it := tree.Begin()
	it.Next()
	it.Next()
	require.Equal(t, int64(4), it.Key())
	it.Prev()
	require.Equal(t, int64(2), it.Key())
	it.Next()
	require.Equal(t, int64(4), it.Key())
}

func TestIteratorBounds(t *testing.T) {
	tree := NewRBTree[int64]()
	for _, key := range []int64{10, 20, 30, 40} {
		require.True(t, tree.Insert(key))
	}

	it := tree.LowerBound(20)
	require.True(t, it.Valid())
	require.Equal(t, int64(20), it.Key())

	it = tree.UpperBound(20)
	require.True(t, it.Valid())
	require.Equal(t, int64(30), it.Key())

	it = tree.LowerBound(25)
	require.True(t, it.Valid())
	require.Equal(t, int64(30), it.Key())

	it = tree.LowerBound(41)
	require.False(t, it.Valid())
	it = tree.UpperBound(40)
	require.False(t, it.Valid())
}

func TestIteratorEmptyTree(t *testing.T) {
	tree := NewRBTree[int64]()
	require.False(t, tree.Begin().Valid())
	require.False(t, tree.End().Valid())

	require.Panics(t, func() {
		it := tree.End()
		it.Prev()
	})
	require.Panics(t, func() {
		it := tree.End()
		_ = it.Key()
	})
}

func TestIteratorPanicsPastBegin(t *testing.T) {
	tree := NewRBTree[int64]()
	require.True(t, tree.Insert(1))

	require.Panics(t, func() {
		it := tree.Begin()
		it.Prev()
	})
}

func TestIteratorRandomizedWalk(t *testing.T) {
	tree := NewRBTree[int64]()
	oracle := map[int64]struct{}{}
	rng := randv2.New(randv2.NewPCG(31337, 0))
	for i := 0; i < 1000; i++ {
		key := rng.Int64N(4096)
		tree.Insert(key)
		oracle[key] = struct{}{}
	}
	sorted := sortedOracle(oracle)

	i := 0
	for it := tree.Begin(); it.Valid(); it.Next() {
		require.Equal(t, sorted[i], it.Key())
		i++
	}
	require.Equal(t, len(sorted), i)
}
