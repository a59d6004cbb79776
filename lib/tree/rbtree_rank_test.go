package tree

import (
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankScenario(t *testing.T) {
	tree := NewRBTree[int64]()
	for _, key := range []int64{10, 5, 15, 3, 7} {
		require.True(t, tree.Insert(key))
	}

	for i, key := range []int64{3, 5, 7, 10, 15} {
		rank, ok := tree.Rank(key)
		require.True(t, ok)
		require.Equal(t, int64(i), rank)
	}

	_, ok := tree.Rank(100)
	require.False(t, ok)

	require.Equal(t, int64(0), tree.RankLower(3))
	require.Equal(t, int64(1), tree.RankUpper(3))
	require.Equal(t, int64(3), tree.RankLower(8))
	require.Equal(t, int64(3), tree.RankUpper(8))
	require.Equal(t, int64(5), tree.RankUpper(100))
}

func TestDistanceScenario(t *testing.T) {
	tree := NewRBTree[int64]()
	for _, key := range []int64{20, 10, 30, 5, 15, 25, 35} {
		require.True(t, tree.Insert(key))
	}

	// Closed-interval counts.
	require.Equal(t, int64(1), tree.Distance(20, 20))
	require.Equal(t, int64(0), tree.Distance(20, 10), "reversed bounds count nothing")
	require.Equal(t, int64(3), tree.Distance(5, 15))
	require.Equal(t, int64(7), tree.Distance(5, 35))
	require.Equal(t, int64(2), tree.Distance(25, 30))
	require.Equal(t, int64(7), tree.Distance(5, 99), "absent bounds still count the interval")
	require.Equal(t, int64(0), tree.Distance(36, 99))
}

func TestNthScenario(t *testing.T) {
	tree := NewRBTree[int64]()
	for _, key := range []int64{2, 3, 5, 4} {
		require.True(t, tree.Insert(key))
	}

	for i, want := range []int64{2, 3, 4, 5} {
		got, ok := tree.Nth(int64(i))
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := tree.Nth(-1)
	require.False(t, ok)
	_, ok = tree.Nth(4)
	require.False(t, ok)
}

func sortedOracle(keys map[int64]struct{}) []int64 {
	sorted := make([]int64, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

func TestRankAgainstLinearScan(t *testing.T) {
	tree := NewRBTree[int64]()
	oracle := map[int64]struct{}{}

	rng := randv2.New(randv2.NewPCG(2024, 7))
	for i := 0; i < 3000; i++ {
		key := rng.Int64N(1024)
		if rng.Float64() < 0.7 {
			tree.Insert(key)
			oracle[key] = struct{}{}
		} else {
			tree.Erase(key)
			delete(oracle, key)
		}
	}
	require.NoError(t, Validate[int64](tree))
	sorted := sortedOracle(oracle)

	for probe := int64(-8); probe <= 1032; probe += 3 {
		lower := int64(sort.Search(len(sorted), func(i int) bool { return sorted[i] >= probe }))
		upper := int64(sort.Search(len(sorted), func(i int) bool { return sorted[i] > probe }))
		require.Equal(t, lower, tree.RankLower(probe), "probe %d", probe)
		require.Equal(t, upper, tree.RankUpper(probe), "probe %d", probe)
	}

	for i, key := range sorted {
		rank, ok := tree.Rank(key)
		require.True(t, ok)
		require.Equal(t, int64(i), rank)

		got, ok := tree.Nth(int64(i))
		require.True(t, ok)
		require.Equal(t, key, got)
	}
}

func TestDistanceAgainstLinearScan(t *testing.T) {
	tree := NewRBTree[int64]()
	oracle := map[int64]struct{}{}

	rng := randv2.New(randv2.NewPCG(99, 4))
	for i := 0; i < 2000; i++ {
		key := rng.Int64N(400)
		if rng.Float64() < 0.65 {
			tree.Insert(key)
			oracle[key] = struct{}{}
		} else {
			tree.Erase(key)
			delete(oracle, key)
		}
	}
	sorted := sortedOracle(oracle)

	for trial := 0; trial < 500; trial++ {
		lo, hi := rng.Int64N(440)-20, rng.Int64N(440)-20
		var want int64
		for _, key := range sorted {
			if key >= lo && key <= hi {
				want++
			}
		}
		require.Equal(t, want, tree.Distance(lo, hi), "interval [%d, %d]", lo, hi)
	}
}
