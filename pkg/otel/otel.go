// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

// Package lancedbotel provides OpenTelemetry instrumentation for the
// LanceDB Cloud client. It implements the [contracts.RequestHook] interface
// to add client spans and request metrics around every request a connection
// sends.
//
// Usage:
//
//	opts := &contracts.ConnectionOptions{
//		APIKey: key,
//		Hook:   lancedbotel.NewHook(lancedbotel.DefaultConfig()),
//	}
//	conn, err := lancedb.Connect(ctx, "db://my-database", opts)
package lancedbotel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/lancedb/lancedb-cloud-go/pkg/contracts"
)

const instrumentationName = "lancedb-cloud-go"

// Config configures OpenTelemetry instrumentation for a connection.
type Config struct {
	// TracerProvider supplies the tracer. Defaults to otel.GetTracerProvider().
	TracerProvider trace.TracerProvider
	// MeterProvider supplies the meter. Defaults to otel.GetMeterProvider().
	MeterProvider metric.MeterProvider
	// EnableTracing enables span creation. Default true.
	EnableTracing bool
	// EnableMetrics enables counter and histogram recording. Default true.
	EnableMetrics bool
	// RecordExceptions calls RecordError on the span for failed requests.
	// Default true.
	RecordExceptions bool
	// CustomAttributes are added to every span.
	CustomAttributes []attribute.KeyValue
}

// DefaultConfig returns a Config with sensible defaults. TracerProvider and
// MeterProvider are resolved from the global OTel SDK when the hook is
// built.
func DefaultConfig() Config {
	return Config{
		EnableTracing:    true,
		EnableMetrics:    true,
		RecordExceptions: true,
	}
}

// NewHook builds a RequestHook that records one client span per connection
// operation plus a request counter and a duration histogram. Install it via
// ConnectionOptions.Hook.
func NewHook(cfg Config) contracts.RequestHook {
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}
	if cfg.MeterProvider == nil {
		cfg.MeterProvider = otel.GetMeterProvider()
	}

	hook := &otelHook{
		cfg:    cfg,
		tracer: cfg.TracerProvider.Tracer(instrumentationName),
	}

	if cfg.EnableMetrics {
		meter := cfg.MeterProvider.Meter(instrumentationName)
		hook.requestCounter, _ = meter.Int64Counter("lancedb.client.requests",
			metric.WithUnit("{request}"),
			metric.WithDescription("Number of requests sent to LanceDB Cloud"),
		)
		hook.durationHistogram, _ = meter.Float64Histogram("lancedb.client.duration",
			metric.WithUnit("s"),
			metric.WithDescription("Duration of LanceDB Cloud requests"),
		)
	}

	return hook
}

// otelHook implements contracts.RequestHook with OpenTelemetry tracing and
// metrics.
type otelHook struct {
	cfg               Config
	tracer            trace.Tracer
	requestCounter    metric.Int64Counter
	durationHistogram metric.Float64Histogram
}

// spanToken is the HookToken returned by OnRequestStart.
type spanToken struct {
	span      trace.Span
	startTime time.Time
}

// OnRequestStart opens a client span for the operation.
func (h *otelHook) OnRequestStart(ctx context.Context, info contracts.RequestInfo) (context.Context, contracts.HookToken) {
	if !h.cfg.EnableTracing {
		return ctx, &spanToken{startTime: time.Now()}
	}

	spanName := fmt.Sprintf("lancedb.remote/%s", info.Operation)

	attrs := []attribute.KeyValue{
		attribute.String("rpc.system", "lancedb_remote"),
		attribute.String("rpc.method", info.Operation),
		attribute.String("http.request.method", info.Method),
		attribute.String("url.path", info.Path),
		attribute.String("lancedb.request_id", info.RequestID),
	}
	if info.Table != "" {
		attrs = append(attrs, attribute.String("lancedb.table", info.Table))
	}
	attrs = append(attrs, h.cfg.CustomAttributes...)

	ctx, span := h.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	return ctx, &spanToken{span: span, startTime: time.Now()}
}

// OnRequestEnd records metrics, sets the span status, and ends the span.
func (h *otelHook) OnRequestEnd(ctx context.Context, token contracts.HookToken, info contracts.RequestInfo, status int, err error) {
	st, ok := token.(*spanToken)
	if !ok {
		return
	}

	duration := time.Since(st.startTime)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	if h.cfg.EnableMetrics {
		metricAttrs := metric.WithAttributes(
			attribute.String("rpc.system", "lancedb_remote"),
			attribute.String("rpc.method", info.Operation),
			attribute.String("status", outcome),
		)
		if h.requestCounter != nil {
			h.requestCounter.Add(ctx, 1, metricAttrs)
		}
		if h.durationHistogram != nil {
			h.durationHistogram.Record(ctx, duration.Seconds(), metricAttrs)
		}
	}

	if st.span != nil && st.span.IsRecording() {
		if status > 0 {
			st.span.SetAttributes(attribute.Int("http.response.status_code", status))
		}
		if err != nil {
			st.span.SetStatus(codes.Error, err.Error())
			if h.cfg.RecordExceptions {
				st.span.RecordError(err)
			}
		} else {
			st.span.SetStatus(codes.Ok, "")
		}
		st.span.End()
	}
}
