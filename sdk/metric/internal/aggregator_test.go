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

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumCumulativeAccumulates(t *testing.T) {
	s := NewSum[int64](false)
	s.Aggregate(1)
	s.Aggregate(2)
	assert.Equal(t, int64(3), s.Collect().Value)
	// Cumulative: a second Collect still reports the running total.
	s.Aggregate(4)
	assert.Equal(t, int64(7), s.Collect().Value)
}

func TestSumDeltaResetsOnCollect(t *testing.T) {
	s := NewSum[int64](true)
	s.Aggregate(1)
	s.Aggregate(2)
	assert.Equal(t, int64(3), s.Collect().Value)
	assert.Equal(t, int64(0), s.Collect().Value)
}

func TestPrecomputedSumReplacesRatherThanAdds(t *testing.T) {
	p := NewPrecomputedSum[int64](false)
	p.Aggregate(5)
	p.Aggregate(9)
	assert.Equal(t, int64(9), p.Collect().Value)
}

func TestPrecomputedSumDeltaReportsDifferenceFromPriorCollect(t *testing.T) {
	p := NewPrecomputedSum[int64](true)
	p.Aggregate(5)
	assert.Equal(t, int64(5), p.Collect().Value)
	p.Aggregate(9)
	assert.Equal(t, int64(4), p.Collect().Value)
}

func TestLastValueKeepsMostRecentAndNeverResets(t *testing.T) {
	lv := NewLastValue[float64]()
	lv.Aggregate(1)
	lv.Aggregate(2)
	assert.Equal(t, 2.0, lv.Collect().Value)
	assert.Equal(t, 2.0, lv.Collect().Value)
}

func TestExplicitBucketHistogramSortsValuesAndTracksMinMax(t *testing.T) {
	h := NewExplicitBucketHistogram[float64]([]float64{0, 10, 20}, false)
	for _, v := range []float64{-1, 5, 15, 25} {
		h.Aggregate(v)
	}

	agg := h.Collect()
	assert.Equal(t, uint64(4), agg.Count)
	assert.Equal(t, -1.0, agg.Min)
	assert.Equal(t, 25.0, agg.Max)
	assert.Equal(t, 44.0, agg.Value)
	assert.Equal(t, []uint64{1, 1, 1, 1}, agg.Buckets)
	assert.True(t, agg.HasMinMax)
}

func TestExplicitBucketHistogramDeltaResetsCountsAndSum(t *testing.T) {
	h := NewExplicitBucketHistogram[int64]([]float64{10}, true)
	h.Aggregate(3)
	h.Aggregate(30)

	first := h.Collect()
	assert.Equal(t, uint64(2), first.Count)

	second := h.Collect()
	assert.Equal(t, uint64(0), second.Count)
	assert.Equal(t, int64(0), second.Value)
	assert.Equal(t, []uint64{0, 0}, second.Buckets)
}
