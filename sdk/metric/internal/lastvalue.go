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

// lastValue aggregates by keeping only the most recently reported value,
// used by Gauge and observable Gauge instruments. Collect always reports
// the last value and never resets it: a gauge has no meaningful "delta".
type lastValue[N Number] struct {
	value N
}

// NewLastValue returns an Aggregator that keeps the most recently reported
// value.
func NewLastValue[N Number]() Aggregator[N] {
	return &lastValue[N]{}
}

func (lv *lastValue[N]) Aggregate(value N) {
	lv.value = value
}

func (lv *lastValue[N]) Collect() Aggregation[N] {
	return Aggregation[N]{Value: lv.value}
}
