package observability

import (
	"context"
	"strings"
	"sync"

	"github.com/samber/lo"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	once  sync.Once
	stats *treeStats
)

type treeStats struct {
	ctx              context.Context
	shutdownCallback func(ctx context.Context) error
	searches         metric.Int64Counter
	splices          metric.Int64Counter
	splicesPerSearch metric.Int64Histogram
}

func (ts *treeStats) waitForShutdown() {
	if ts == nil || ts.shutdownCallback == nil {
		return
	}
	go func() {
		<-ts.ctx.Done()
		_ = ts.shutdownCallback(context.Background())
	}()
}

// InitTreeStats registers the search instrumentation on the global
// meter provider. Safe to call more than once, only the first call
// takes effect.
func InitTreeStats(ctx context.Context, name string) {
	once.Do(func() {
		builder := &strings.Builder{}
		builder.WriteString("xtango/tree")
		if len(strings.TrimSpace(name)) > 0 {
			builder.Write([]byte("/"))
			builder.WriteString(name)
		}
		meter := otel.Meter(
			builder.String(),
			metric.WithInstrumentationVersion(otelruntime.Version()),
		)
		stats = &treeStats{
			ctx: ctx,
			searches: lo.Must[metric.Int64Counter](meter.Int64Counter(
				"tree.tango.searches",
				metric.WithDescription(`The total amount of tango searches.`),
			)),
			splices: lo.Must[metric.Int64Counter](meter.Int64Counter(
				"tree.tango.splices",
				metric.WithDescription(`The total amount of preferred path splices.`),
			)),
			splicesPerSearch: lo.Must[metric.Int64Histogram](meter.Int64Histogram(
				"tree.tango.splices_per_search",
				metric.WithDescription(`The amount of splices a single search performed.`),
			)),
		}
		_ = otelruntime.Start()
		stats.waitForShutdown()
	})
}

// ObserveTangoSearch records one finished search and the splices it
// performed. A no-op until InitTreeStats has run.
func ObserveTangoSearch(ctx context.Context, splices int) {
	ts := stats
	if ts == nil {
		return
	}
	ts.searches.Add(ctx, 1)
	ts.splices.Add(ctx, int64(splices))
	ts.splicesPerSearch.Record(ctx, int64(splices))
}
