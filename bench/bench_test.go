package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildWorkloadDeterministic(t *testing.T) {
	opts := Options{OpCount: 5000, Seed: 42, MaxValue: 1000, InsertRatio: 0.5}
	first := BuildWorkload(opts)
	second := BuildWorkload(opts)
	require.Equal(t, first, second)
	require.Len(t, first, opts.OpCount)

	other := BuildWorkload(Options{OpCount: 5000, Seed: 43, MaxValue: 1000, InsertRatio: 0.5})
	require.NotEqual(t, first, other)
}

func TestBuildWorkloadRatioClamped(t *testing.T) {
	allInserts := BuildWorkload(Options{OpCount: 200, Seed: 1, MaxValue: 100, InsertRatio: 7.5})
	for _, op := range allInserts {
		require.Equal(t, OpInsert, op.Kind)
	}

	allQueries := BuildWorkload(Options{OpCount: 200, Seed: 1, MaxValue: 100, InsertRatio: -1})
	for _, op := range allQueries {
		require.Equal(t, OpQuery, op.Kind)
	}
}

func TestCompetitorChecksumsAgree(t *testing.T) {
	ops := BuildWorkload(Options{OpCount: 20_000, Seed: 7, MaxValue: 2_000, InsertRatio: 0.5})

	rbRes := RunRBTree(ops)
	refRes := RunReference(ops)
	require.Equal(t, refRes.Checksum, rbRes.Checksum,
		"order-statistic counts must match the reference container")
	require.NotZero(t, rbRes.Checksum)
}

func TestRunRBTreeEmptyWorkload(t *testing.T) {
	res := RunRBTree(nil)
	require.Zero(t, res.Checksum)
}
