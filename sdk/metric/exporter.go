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

package metric // import "go.opentelemetry.io/otelcore/sdk/metric"

import (
	"context"

	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
)

// Exporter is the pluggable sink a Reader hands collected metrics to.
type Exporter interface {
	Export(ctx context.Context, metrics *data.ResourceMetrics) error
	ForceFlush(ctx context.Context) error
	Shutdown(ctx context.Context) error
	// Temporality reports which data.Temporality this exporter wants for
	// instruments of kind (spec.md §6's MetricExporter contract).
	Temporality(kind apimetric.InstrumentKind) data.Temporality
}

// Reader collects metrics from a registered pipeline on its own schedule
// (periodic, or pull-on-demand) and hands them to an Exporter.
type Reader interface {
	register(pipeline *pipeline)
	Collect(ctx context.Context) (*data.ResourceMetrics, error)
	Shutdown(ctx context.Context) error
	ForceFlush(ctx context.Context) error
	// temporality reports the Temporality this reader wants applied to
	// instruments of kind, consulted once per instrument at creation time.
	temporality(kind apimetric.InstrumentKind) data.Temporality
}
