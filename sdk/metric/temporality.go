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
	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
)

// TemporalitySelector reports which data.Temporality an Exporter wants
// applied to instruments of a given kind. A Reader consults its Exporter's
// selector once per instrument, at instrument-creation time, so the choice
// is fixed for that instrument's lifetime (spec.md §4.2/§6).
type TemporalitySelector func(apimetric.InstrumentKind) data.Temporality

// DefaultTemporalitySelector reports Cumulative temporality for every
// instrument kind, matching the OTel SDK specification's default.
func DefaultTemporalitySelector(apimetric.InstrumentKind) data.Temporality {
	return data.CumulativeTemporality
}

// DeltaTemporalitySelector reports Delta temporality for Counter,
// UpDownCounter, ObservableCounter, ObservableUpDownCounter, and Histogram,
// and Cumulative for Gauge and ObservableGauge: a gauge's last-value
// semantics have no meaningful delta (spec.md §4.2).
func DeltaTemporalitySelector(kind apimetric.InstrumentKind) data.Temporality {
	switch kind {
	case apimetric.InstrumentKindGauge, apimetric.InstrumentKindObservableGauge:
		return data.CumulativeTemporality
	default:
		return data.DeltaTemporality
	}
}
