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

// sum aggregates by addition, for Counter and UpDownCounter instruments.
// Monotonic instruments reject negative increments in syncInstrument.observe
// before Aggregate is ever invoked; this aggregator has no notion of
// monotonicity of its own.
type sum[N Number] struct {
	value N
	reset bool
}

// NewSum returns an Aggregator that accumulates by addition. If deltaReset
// is true, Collect zeroes the running value as a side effect (delta
// temporality); otherwise the value keeps accumulating (cumulative
// temporality).
func NewSum[N Number](deltaReset bool) Aggregator[N] {
	return &sum[N]{reset: deltaReset}
}

func (s *sum[N]) Aggregate(value N) {
	s.value += value
}

func (s *sum[N]) Collect() Aggregation[N] {
	v := s.value
	if s.reset {
		s.value = 0
	}
	return Aggregation[N]{Value: v}
}

// precomputedSum aggregates an already-cumulative value reported by an
// observable callback: each report replaces, rather than adds to, the
// stored value, and Collect may report the delta from the prior collection
// when deltaReset is set (spec.md's PrecomputedSum, grounded in the
// original implementation's precomputed_sum aggregation).
type precomputedSum[N Number] struct {
	value    N
	previous N
	reset    bool
}

// NewPrecomputedSum returns an Aggregator for observable counters that
// already report a running total rather than an increment.
func NewPrecomputedSum[N Number](deltaReset bool) Aggregator[N] {
	return &precomputedSum[N]{reset: deltaReset}
}

func (p *precomputedSum[N]) Aggregate(value N) {
	p.value = value
}

func (p *precomputedSum[N]) Collect() Aggregation[N] {
	v := p.value
	if p.reset {
		delta := v - p.previous
		p.previous = v
		return Aggregation[N]{Value: delta}
	}
	return Aggregation[N]{Value: v}
}
