// Copyright The OpenTelemetry Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package otlpreference is a reference exporter showing the external
// contract a wire-format exporter (OTLP or otherwise) would implement: a
// thin retry decorator around an underlying SpanExporter/LogExporter/
// MetricExporter, backing off between attempts the way a real network
// transport must. It carries no wire codec of its own; the decorated
// exporter is the actual sink (a real transport, or, in tests, an
// exporters/inmemory one).
package otlpreference // import "go.opentelemetry.io/otelcore/exporters/otlpreference"

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	apimetric "go.opentelemetry.io/otelcore/metric"
	sdklog "go.opentelemetry.io/otelcore/sdk/log"
	"go.opentelemetry.io/otelcore/sdk/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"
)

// newBackOff returns the exponential backoff policy every reference
// exporter retries under, bounded by ctx rather than its own MaxElapsedTime.
func newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0
	return backoff.WithContext(b, ctx)
}

// SpanExporter retries ExportSpans against an underlying SpanExporter with
// exponential backoff until it succeeds or ctx is done.
type SpanExporter struct {
	next sdktrace.SpanExporter
}

// NewSpanExporter wraps next with retry/backoff.
func NewSpanExporter(next sdktrace.SpanExporter) *SpanExporter {
	return &SpanExporter{next: next}
}

func (e *SpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	return backoff.Retry(func() error {
		return e.next.ExportSpans(ctx, spans)
	}, newBackOff(ctx))
}

func (e *SpanExporter) Shutdown(ctx context.Context) error { return e.next.Shutdown(ctx) }

// LogExporter retries Export against an underlying LogExporter with
// exponential backoff until it succeeds or ctx is done.
type LogExporter struct {
	next sdklog.LogExporter
}

// NewLogExporter wraps next with retry/backoff.
func NewLogExporter(next sdklog.LogExporter) *LogExporter {
	return &LogExporter{next: next}
}

func (e *LogExporter) Export(ctx context.Context, records []*sdklog.ReadableLogRecord) error {
	return backoff.Retry(func() error {
		return e.next.Export(ctx, records)
	}, newBackOff(ctx))
}

func (e *LogExporter) Shutdown(ctx context.Context) error { return e.next.Shutdown(ctx) }

// MetricExporter retries Export against an underlying metric.Exporter with
// exponential backoff until it succeeds or ctx is done.
type MetricExporter struct {
	next metric.Exporter
}

// NewMetricExporter wraps next with retry/backoff.
func NewMetricExporter(next metric.Exporter) *MetricExporter {
	return &MetricExporter{next: next}
}

func (e *MetricExporter) Export(ctx context.Context, rm *data.ResourceMetrics) error {
	return backoff.Retry(func() error {
		return e.next.Export(ctx, rm)
	}, newBackOff(ctx))
}

func (e *MetricExporter) ForceFlush(ctx context.Context) error { return e.next.ForceFlush(ctx) }
func (e *MetricExporter) Shutdown(ctx context.Context) error   { return e.next.Shutdown(ctx) }

// Temporality delegates to the underlying exporter's own preference.
func (e *MetricExporter) Temporality(kind apimetric.InstrumentKind) data.Temporality {
	return e.next.Temporality(kind)
}
