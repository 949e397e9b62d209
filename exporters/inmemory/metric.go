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

package inmemory // import "go.opentelemetry.io/otelcore/exporters/inmemory"

import (
	"context"
	"sync"

	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
)

// TemporalitySelector reports which data.Temporality this exporter wants
// applied to instruments of a given kind. Mirrors sdk/metric's own
// TemporalitySelector; duplicated here (rather than imported) so this
// reference exporter doesn't import the SDK package its own tests need to
// import it from.
type TemporalitySelector func(apimetric.InstrumentKind) data.Temporality

// DefaultTemporalitySelector reports Cumulative temporality for every
// instrument kind.
func DefaultTemporalitySelector(apimetric.InstrumentKind) data.Temporality {
	return data.CumulativeTemporality
}

// MetricExporter collects every exported ResourceMetrics snapshot in memory.
type MetricExporter struct {
	mu        sync.Mutex
	snapshots []*data.ResourceMetrics
	selector  TemporalitySelector
}

// MetricExporterOption configures a MetricExporter.
type MetricExporterOption func(*MetricExporter)

// WithTemporalitySelector overrides the Temporality this exporter requests
// per instrument kind. Defaults to DefaultTemporalitySelector.
func WithTemporalitySelector(selector TemporalitySelector) MetricExporterOption {
	return func(e *MetricExporter) { e.selector = selector }
}

// NewMetricExporter returns an empty MetricExporter.
func NewMetricExporter(opts ...MetricExporterOption) *MetricExporter {
	e := &MetricExporter{selector: DefaultTemporalitySelector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Temporality reports the Temporality this exporter requests for kind.
func (e *MetricExporter) Temporality(kind apimetric.InstrumentKind) data.Temporality {
	return e.selector(kind)
}

// Export appends rm to the exporter's buffer.
func (e *MetricExporter) Export(_ context.Context, rm *data.ResourceMetrics) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snapshots = append(e.snapshots, rm)
	return nil
}

// ForceFlush is a no-op: every Export call already landed in the buffer.
func (e *MetricExporter) ForceFlush(context.Context) error { return nil }

// Shutdown is a no-op; GetSnapshots still returns what was collected.
func (e *MetricExporter) Shutdown(context.Context) error { return nil }

// GetSnapshots returns every ResourceMetrics exported so far.
func (e *MetricExporter) GetSnapshots() []*data.ResourceMetrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*data.ResourceMetrics, len(e.snapshots))
	copy(out, e.snapshots)
	return out
}
