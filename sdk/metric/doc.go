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

/*
Package metric implements the metric.MeterProvider and metric.Meter APIs.

A MeterProvider holds one pipeline per registered Reader. Every Meter
obtained from the provider creates its instruments against all of those
pipelines at once, so the same measurement stream feeds every reader
independently: two readers with different collection needs never share
aggregator state for the same instrument.

A synchronous instrument (Counter, UpDownCounter, Histogram, Gauge) holds
one ValueMap per pipeline. Add/Record writes the measurement into every one
of them under the instrument's attribute set. An observable instrument
(ObservableCounter, ObservableUpDownCounter, ObservableGauge) holds the same
per-pipeline ValueMaps, but they are populated only when a registered
callback runs, via an Observer scoped to the pipeline currently collecting.

Collection walks a pipeline's registered instruments, rendering each
ValueMap's current aggregation into the data.Metric shape an Exporter
expects, and hands the whole tree to the Reader that owns the pipeline.
PeriodicReader drives this on a fixed interval from a background goroutine;
ManualReader only collects when asked, for tests and pull-based exporters.

Each instrument is bound to one Temporality per pipeline, chosen once at
instrument-creation time by consulting the owning Reader's
TemporalitySelector (an Exporter's preference, for PeriodicReader). Delta
instruments reset their aggregator on every Collect; Gauge never resets,
cumulative or not.
*/
package metric // import "go.opentelemetry.io/otelcore/sdk/metric"
