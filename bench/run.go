package bench

import (
	"time"

	"github.com/google/btree"

	"github.com/rozmar1n/RB-tree/lib/hrtime"
	"github.com/rozmar1n/RB-tree/lib/tree"
)

// referenceDegree is the btree fanout of the reference container.
const referenceDegree = 32

type Result struct {
	Elapsed  time.Duration
	Checksum uint64
}

// RunRBTree replays ops against the order-statistic tree. Queries use
// the closed-interval Distance and feed the checksum.
func RunRBTree(ops []Operation) Result {
	t := tree.NewRBTree[int64]()
	defer t.Release()

	var checksum uint64
	start := hrtime.MonotonicElapsed()
	for _, op := range ops {
		switch op.Kind {
		case OpInsert:
			_ = t.Insert(op.A)
		case OpQuery:
			checksum += uint64(t.Distance(op.A, op.B))
		}
	}
	elapsed := hrtime.MonotonicElapsed() - start

	return Result{Elapsed: elapsed, Checksum: checksum}
}

// RunReference replays the same ops against a google/btree ordered
// set; range counts walk the closed interval element by element, the
// way a stock ordered container has to.
func RunReference(ops []Operation) Result {
	ref := btree.NewOrderedG[int64](referenceDegree)

	var checksum uint64
	start := hrtime.MonotonicElapsed()
	for _, op := range ops {
		switch op.Kind {
		case OpInsert:
			_, _ = ref.ReplaceOrInsert(op.A)
		case OpQuery:
			if op.B < op.A {
				continue
			}
			var n uint64
			ref.AscendGreaterOrEqual(op.A, func(item int64) bool {
				if item > op.B {
					return false
				}
				n++
				return true
			})
			checksum += n
		}
	}
	elapsed := hrtime.MonotonicElapsed() - start

	return Result{Elapsed: elapsed, Checksum: checksum}
}
