// internal/common/observability/metrics.go
package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider      *metric.MeterProvider
	meter              otelmetric.Meter
	assessmentCounter  otelmetric.Int64Counter
	assessmentDuration otelmetric.Float64Histogram
}

// New registers an otel meter provider whose instruments are exported through
// the default prometheus registry, so they appear on /metrics.
func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	assessmentCounter, _ := meter.Int64Counter(
		"assessments.processed",
		otelmetric.WithDescription("Number of assessments processed"),
	)

	assessmentDuration, _ := meter.Float64Histogram(
		"assessments.duration",
		otelmetric.WithDescription("Assessment processing duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:      provider,
		meter:              meter,
		assessmentCounter:  assessmentCounter,
		assessmentDuration: assessmentDuration,
	}
}

// Noop returns an Observability that records nothing.
func Noop() *Observability {
	return &Observability{}
}

func (o *Observability) RecordAssessment(ctx context.Context, channel, status string) {
	if o == nil || o.assessmentCounter == nil {
		return
	}
	o.assessmentCounter.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("status", status),
	))
}

func (o *Observability) RecordDuration(ctx context.Context, duration time.Duration, channel string) {
	if o == nil || o.assessmentDuration == nil {
		return
	}
	o.assessmentDuration.Record(ctx, float64(duration.Microseconds())/1000, otelmetric.WithAttributes(
		attribute.String("channel", channel),
	))
}

func (o *Observability) Shutdown() {
	if o == nil || o.meterProvider == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.meterProvider.Shutdown(ctx); err != nil {
		log.Printf("Failed to shut down meter provider: %v", err)
	}
}
