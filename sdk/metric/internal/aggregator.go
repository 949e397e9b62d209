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

// Package internal implements the per-attribute-set aggregation storage
// shared by every instrument kind: Sum, LastValue, ExplicitBucketHistogram,
// and PrecomputedSum, held behind a sharded, cardinality-capped ValueMap
// (spec.md C12-C14).
package internal // import "go.opentelemetry.io/otelcore/sdk/metric/internal"

import (
	"time"

	"go.opentelemetry.io/otelcore/attribute"
)

// Number is the set of measurement value types an aggregator can store.
type Number interface {
	~int64 | ~float64
}

// Aggregation is the aggregator-agnostic result of collecting one
// attribute-set's accumulated value, handed to the data-point builder.
type Aggregation[N Number] struct {
	Value   N
	Min     N
	Max     N
	Count   uint64
	Buckets []uint64
	Bounds  []float64
	HasMinMax bool
}

// Aggregator accumulates measurements for a single attribute set between
// two collections. Implementations are not safe for concurrent use; callers
// serialize access per attribute set (ValueMap holds one Aggregator per
// distinct Set behind its own lock).
type Aggregator[N Number] interface {
	// Aggregate folds value into the aggregator's running state.
	Aggregate(value N)
	// Collect returns the current state. Delta aggregators reset their
	// state as a side effect; cumulative aggregators do not.
	Collect() Aggregation[N]
}

// Temporality selects whether a reader observes deltas since the last
// collection or a running cumulative total.
type Temporality int

const (
	CumulativeTemporality Temporality = iota
	DeltaTemporality
)

// Snapshot pairs a collected Aggregation with the timestamp it covers and
// the attribute identity it was collected under, produced by ValueMap.Collect.
type Snapshot[N Number] struct {
	Attributes attribute.Set
	Aggregation[N]
	Time time.Time
}
