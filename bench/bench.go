// Package bench drives the order-statistic tree with synthetic
// insert/range-count workloads and compares wall-clock timings against
// a reference ordered container. It carries no compatibility contract;
// only the checksum cross-check between the two runs is meaningful.
package bench

import (
	randv2 "math/rand/v2"

	"github.com/samber/lo"
)

type OpKind byte

const (
	OpInsert OpKind = 'k'
	OpQuery  OpKind = 'q'
)

type Operation struct {
	Kind OpKind
	A    int64
	B    int64
}

type Options struct {
	// OpCount is the total number of generated operations.
	OpCount int
	// Seed feeds the deterministic workload generator; equal seeds
	// always rebuild the identical workload.
	Seed uint64
	// MaxValue bounds the generated values to [0, MaxValue].
	MaxValue int64
	// InsertRatio is the fraction of insert operations, clamped to
	// [0, 1]; the rest are range-count queries.
	InsertRatio float64
}

func DefaultOptions() Options {
	return Options{
		OpCount:     100_000,
		Seed:        42,
		MaxValue:    1_000_000,
		InsertRatio: 0.5,
	}
}

// BuildWorkload materializes the operation mix up front, so both
// competitor runs replay the exact same sequence.
func BuildWorkload(opts Options) []Operation {
	ratio := lo.Clamp(opts.InsertRatio, 0.0, 1.0)
	maxValue := lo.Max([]int64{opts.MaxValue, 0})

	rng := randv2.New(randv2.NewPCG(opts.Seed, 0))
	ops := make([]Operation, 0, opts.OpCount)
	for i := 0; i < opts.OpCount; i++ {
		if rng.Float64() < ratio {
			ops = append(ops, Operation{
				Kind: OpInsert,
				A:    rng.Int64N(maxValue + 1),
			})
		} else {
			ops = append(ops, Operation{
				Kind: OpQuery,
				A:    rng.Int64N(maxValue + 1),
				B:    rng.Int64N(maxValue + 1),
			})
		}
	}
	return ops
}
