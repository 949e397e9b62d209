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

// Package data holds the exporter-facing shapes produced by a collection
// cycle: a tree of ResourceMetrics -> ScopeMetrics -> Metrics -> data
// points (spec.md C15).
package data // import "go.opentelemetry.io/otelcore/sdk/metric/data"

import (
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/resource"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
)

// Temporality selects whether a data point reports a delta since the
// previous collection or a running cumulative total.
type Temporality int

const (
	CumulativeTemporality Temporality = iota
	DeltaTemporality
)

// DataPoint is a single aggregated value for one attribute set.
type DataPoint[N int64 | float64] struct {
	Attributes attribute.Set
	StartTime  time.Time
	Time       time.Time
	Value      N
}

// HistogramDataPoint is a single aggregated distribution for one attribute
// set.
type HistogramDataPoint[N int64 | float64] struct {
	Attributes   attribute.Set
	StartTime    time.Time
	Time         time.Time
	Count        uint64
	Sum          N
	Min          N
	Max          N
	HasMinMax    bool
	Bounds       []float64
	BucketCounts []uint64
}

// Sum is an additive aggregation over one or more DataPoints.
type Sum[N int64 | float64] struct {
	DataPoints  []DataPoint[N]
	Temporality Temporality
	IsMonotonic bool
}

// Gauge is a non-additive, last-value-wins aggregation.
type Gauge[N int64 | float64] struct {
	DataPoints []DataPoint[N]
}

// Histogram is an explicit-bucket distribution aggregation.
type Histogram[N int64 | float64] struct {
	DataPoints  []HistogramDataPoint[N]
	Temporality Temporality
}

// Metric is one instrument's collected data for this cycle. Data holds a
// single aggregation value whose type matches the Aggregation the
// instrument resolved to.
type Metric struct {
	Name        string
	Description string
	Unit        string
	Data        interface{} // one of Sum[int64], Sum[float64], Gauge[int64], Gauge[float64], Histogram[int64], Histogram[float64]
}

// ScopeMetrics groups Metrics produced by a single Meter (instrumentation
// scope).
type ScopeMetrics struct {
	Scope   instrumentation.Scope
	Metrics []Metric
}

// ResourceMetrics is the top-level payload handed to an Exporter for one
// collection cycle.
type ResourceMetrics struct {
	Resource     *resource.Resource
	ScopeMetrics []ScopeMetrics
}
