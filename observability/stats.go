package observability

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	once  sync.Once
	stats *benchStats
)

type benchStats struct {
	ctx              context.Context
	shutdownCallback func(ctx context.Context) error
	ops              metric.Int64Counter
	runMillis        metric.Float64Histogram
}

func (s *benchStats) waitForShutdown() {
	if s == nil {
		return
	}
	go func() {
		<-s.ctx.Done()
		if s.shutdownCallback != nil {
			_ = s.shutdownCallback(context.Background())
		}
	}()
}

// InitBenchStats registers the benchmark instruments on the global
// meter once and starts the otel runtime instrumentation alongside.
func InitBenchStats(ctx context.Context, name string) {
	once.Do(func() {
		builder := &strings.Builder{}
		builder.WriteString("rbtree/bench")
		if len(strings.TrimSpace(name)) > 0 {
			builder.WriteString("/")
			builder.WriteString(name)
		}
		meter := otel.Meter(builder.String())
		stats = &benchStats{
			ctx: ctx,
			ops: lo.Must[metric.Int64Counter](meter.Int64Counter(
				"bench.ops",
				metric.WithDescription(`Operations replayed by a benchmark run.`),
			)),
			runMillis: lo.Must[metric.Float64Histogram](meter.Float64Histogram(
				"bench.run.millis",
				metric.WithDescription(`Wall-clock duration of a benchmark run.`),
				metric.WithUnit("ms"),
			)),
		}
		_ = otelruntime.Start()
		stats.waitForShutdown()
	})
}

// RecordRun reports one finished benchmark run, attributed to the
// implementation under test.
func RecordRun(ctx context.Context, impl string, opCount int, elapsed time.Duration) {
	if stats == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("impl", impl))
	stats.ops.Add(ctx, int64(opCount), attrs)
	stats.runMillis.Record(ctx, float64(elapsed)/float64(time.Millisecond), attrs)
}

// RegisterShutdownCallback lets the exporter flush before the context
// owning the stats goes away.
func RegisterShutdownCallback(callback func(ctx context.Context) error) {
	if stats == nil {
		return
	}
	stats.shutdownCallback = callback
}
