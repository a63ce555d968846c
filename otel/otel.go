package otel

import (
	"context"

	otelprom "go.opentelemetry.io/otel/exporters/prometheus"

	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	resource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	config "github.com/ownway22/Az-AIAgentSvc-MCP/config"
)

type MeterProvider = sdkmetric.MeterProvider

// OpenTelemetry records bot and tool-call metrics.
//
//go:generate mockgen -source=otel.go -destination=../tests/mocks/otel.go -package=mocks
type OpenTelemetry interface {
	Init(config config.Config) error
	RecordToolCall(ctx context.Context, tool string, outcome string, seconds float64)
	RecordRetry(ctx context.Context, tool string)
	RecordTurn(ctx context.Context, seconds float64)
}

type OpenTelemetryImpl struct {
	meterProvider *MeterProvider

	toolCallCounter  metric.Int64Counter
	retryCounter     metric.Int64Counter
	toolCallDuration metric.Float64Histogram
	turnDuration     metric.Float64Histogram
}

func (o *OpenTelemetryImpl) Init(config config.Config) error {
	// Prometheus exporter registers with the default registry used by the
	// /metrics handler.
	exporter, err := otelprom.New()
	if err != nil {
		return err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(config.ApplicationName),
		)),
	)

	otel.SetMeterProvider(mp)
	o.meterProvider = mp

	meter := mp.Meter(config.ApplicationName)

	var errs []error
	o.toolCallCounter, err = meter.Int64Counter(
		"mcp.tool.calls",
		metric.WithDescription("Number of MCP tool calls by outcome"),
	)
	errs = append(errs, err)

	o.retryCounter, err = meter.Int64Counter(
		"mcp.tool.retries",
		metric.WithDescription("Number of retried MCP tool call attempts"),
	)
	errs = append(errs, err)

	o.toolCallDuration, err = meter.Float64Histogram(
		"mcp.tool.duration",
		metric.WithDescription("MCP tool call latency"),
		metric.WithUnit("s"),
	)
	errs = append(errs, err)

	o.turnDuration, err = meter.Float64Histogram(
		"bot.turn.duration",
		metric.WithDescription("End-to-end bot turn latency"),
		metric.WithUnit("s"),
	)
	errs = append(errs, err)

	for _, e := range errs {
		if e != nil {
			return e
		}
	}

	return nil
}

func (o *OpenTelemetryImpl) RecordToolCall(ctx context.Context, tool string, outcome string, seconds float64) {
	if o.toolCallCounter == nil || o.toolCallDuration == nil {
		return // Not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	}

	o.toolCallCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	o.toolCallDuration.Record(ctx, seconds, metric.WithAttributes(attrs...))
}

func (o *OpenTelemetryImpl) RecordRetry(ctx context.Context, tool string) {
	if o.retryCounter == nil {
		return
	}
	o.retryCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("tool", tool)))
}

func (o *OpenTelemetryImpl) RecordTurn(ctx context.Context, seconds float64) {
	if o.turnDuration == nil {
		return
	}
	o.turnDuration.Record(ctx, seconds)
}
