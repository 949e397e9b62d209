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

package internal // import "go.opentelemetry.io/otelcore/sdk/metric/internal"

import "sort"

// DefaultHistogramBounds are the bucket boundaries used when a Histogram
// View does not specify its own, matching the OTel SDK specification's
// default explicit bucket boundaries.
var DefaultHistogramBounds = []float64{
	0, 5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000,
}

// explicitBucketHistogram sorts each value into one of len(bounds)+1
// buckets (the last for values above every bound), plus running count,
// sum, min, and max (spec.md C13).
type explicitBucketHistogram[N Number] struct {
	bounds  []float64
	buckets []uint64
	sum     N
	count   uint64
	min     N
	max     N
	reset   bool
}

// NewExplicitBucketHistogram returns an Aggregator that sorts values into
// the given bucket boundaries, cloning bounds so later mutation by the
// caller cannot affect this aggregator.
func NewExplicitBucketHistogram[N Number](bounds []float64, deltaReset bool) Aggregator[N] {
	b := make([]float64, len(bounds))
	copy(b, bounds)
	sort.Float64s(b)
	return &explicitBucketHistogram[N]{
		bounds:  b,
		buckets: make([]uint64, len(b)+1),
		reset:   deltaReset,
	}
}

func (h *explicitBucketHistogram[N]) Aggregate(value N) {
	idx := sort.SearchFloat64s(h.bounds, float64(value))
	h.buckets[idx]++
	if h.count == 0 || value < h.min {
		h.min = value
	}
	if h.count == 0 || value > h.max {
		h.max = value
	}
	h.sum += value
	h.count++
}

func (h *explicitBucketHistogram[N]) Collect() Aggregation[N] {
	buckets := make([]uint64, len(h.buckets))
	copy(buckets, h.buckets)
	bounds := make([]float64, len(h.bounds))
	copy(bounds, h.bounds)

	agg := Aggregation[N]{
		Value:     h.sum,
		Min:       h.min,
		Max:       h.max,
		Count:     h.count,
		Buckets:   buckets,
		Bounds:    bounds,
		HasMinMax: h.count > 0,
	}
	if h.reset {
		h.sum = 0
		h.count = 0
		h.min = 0
		h.max = 0
		for i := range h.buckets {
			h.buckets[i] = 0
		}
	}
	return agg
}
