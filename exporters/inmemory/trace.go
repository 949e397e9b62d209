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

// Package inmemory provides minimal in-memory SpanExporter, LogExporter,
// and metric.Exporter implementations: reference exporters exercising the
// external export contract, used in tests and as a runnable example of
// that contract. None of them implement a wire protocol.
package inmemory // import "go.opentelemetry.io/otelcore/exporters/inmemory"

import (
	"context"
	"sync"

	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"
)

// SpanExporter collects every exported span in memory for later inspection.
type SpanExporter struct {
	mu       sync.Mutex
	spans    []sdktrace.ReadOnlySpan
	shutdown bool
}

// NewSpanExporter returns an empty SpanExporter.
func NewSpanExporter() *SpanExporter { return &SpanExporter{} }

var _ sdktrace.SpanExporter = (*SpanExporter)(nil)

// ExportSpans appends spans to the exporter's buffer. After Shutdown it
// drops them and returns nil.
func (e *SpanExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.shutdown {
		return nil
	}
	e.spans = append(e.spans, spans...)
	return nil
}

// Shutdown marks the exporter unusable; GetSpans still returns what was
// collected before Shutdown.
func (e *SpanExporter) Shutdown(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

// GetSpans returns a copy of every span exported so far.
func (e *SpanExporter) GetSpans() []sdktrace.ReadOnlySpan {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]sdktrace.ReadOnlySpan, len(e.spans))
	copy(out, e.spans)
	return out
}

// Reset clears every span collected so far.
func (e *SpanExporter) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = nil
}
