// Package metrics holds the shared OpenTelemetry instruments of the service.
// Instruments are exported through Prometheus.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "recon"

// Lookup outcomes.
const (
	OutcomePositive = "positive"
	OutcomeNegative = "negative"
)

// NewMeterProvider creates a meter provider whose instruments are exported to reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exp),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Kind: sdkmetric.InstrumentKindHistogram},
			sdkmetric.Stream{Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: DefaultBuckets}},
		)),
	), nil
}

// Lookups records latency and outcome of the outbound OSINT lookups.
type Lookups struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	analyses metric.Int64Counter
}

// NewLookups creates the lookup instruments on mp. A nil mp yields no-op instruments.
func NewLookups(mp metric.MeterProvider) (*Lookups, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	duration, err := meter.Float64Histogram("recon_lookup_duration",
		metric.WithDescription("Duration of a single OSINT lookup."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create lookup duration histogram: %w", err)
	}
	total, err := meter.Int64Counter("recon_lookup_total",
		metric.WithDescription("OSINT lookups by source and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create lookup counter: %w", err)
	}
	analyses, err := meter.Int64Counter("recon_analysis_total",
		metric.WithDescription("Completed reconnaissance runs by risk level."))
	if err != nil {
		return nil, fmt.Errorf("could not create analysis counter: %w", err)
	}

	return &Lookups{duration: duration, total: total, analyses: analyses}, nil
}

// Observe records a finished lookup of source that started at start.
func (l *Lookups) Observe(ctx context.Context, source string, start time.Time, positive bool) {
	outcome := OutcomeNegative
	if positive {
		outcome = OutcomePositive
	}
	l.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attribute.String("source", source)))
	l.total.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.String("outcome", outcome)))
}

// Analysis counts a completed run classified as risk.
func (l *Lookups) Analysis(ctx context.Context, risk string) {
	l.analyses.Add(ctx, 1, metric.WithAttributes(attribute.String("risk", risk)))
}
