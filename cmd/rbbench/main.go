// Package main is the entry point for rbbench: it builds a synthetic
// insert/range-count workload, replays it on the order-statistic tree
// and on a btree reference container, and reports both timings.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/rozmar1n/RB-tree/bench"
	"github.com/rozmar1n/RB-tree/observability"
	"github.com/rozmar1n/RB-tree/xlog"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaults := bench.DefaultOptions()
	opts := bench.Options{}
	flag.IntVar(&opts.OpCount, "ops", defaults.OpCount, "total operation count")
	flag.Uint64Var(&opts.Seed, "seed", defaults.Seed, "workload random seed")
	flag.Int64Var(&opts.MaxValue, "max", defaults.MaxValue, "maximum generated value")
	flag.Float64Var(&opts.InsertRatio, "insert-ratio", defaults.InsertRatio, "fraction of insert operations, the rest are range queries")
	flag.Parse()

	logger := xlog.NewXLogger(
		xlog.WithComponent("rbbench"),
		xlog.WithWriter(os.Stderr),
	)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown, err := observability.NewConsoleMetricsExporter(10*time.Second, time.Second)
	if err != nil {
		logger.Error(err, "failed to install metrics exporter")
		return 1
	}
	observability.InitBenchStats(ctx, "rbbench")
	observability.RegisterShutdownCallback(shutdown)

	ops := bench.BuildWorkload(opts)
	logger.Info("workload ready",
		zap.Int("ops", len(ops)),
		zap.Uint64("seed", opts.Seed),
		zap.Int64("max", opts.MaxValue),
		zap.Float64("insertRatio", opts.InsertRatio),
	)

	rbRes := bench.RunRBTree(ops)
	observability.RecordRun(ctx, "rbtree", len(ops), rbRes.Elapsed)
	logger.Info("rbtree run finished",
		zap.Duration("elapsed", rbRes.Elapsed),
		zap.Uint64("checksum", rbRes.Checksum),
	)

	refRes := bench.RunReference(ops)
	observability.RecordRun(ctx, "btree-reference", len(ops), refRes.Elapsed)
	logger.Info("btree reference run finished",
		zap.Duration("elapsed", refRes.Elapsed),
		zap.Uint64("checksum", refRes.Checksum),
	)

	if rbRes.Checksum != refRes.Checksum {
		logger.Error(nil, "checksum mismatch between the competitors",
			zap.Uint64("rbtree", rbRes.Checksum),
			zap.Uint64("reference", refRes.Checksum),
		)
		return 1
	}

	_ = shutdown(context.Background())
	return 0
}
