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
	"fmt"

	"go.opentelemetry.io/otelcore/attribute"
	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
	"go.opentelemetry.io/otelcore/sdk/internal/global"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
	"go.opentelemetry.io/otelcore/sdk/metric/internal"
)

// syncPoint is one pipeline's storage for a single synchronous instrument:
// its own ValueMap, so each reader aggregates independently even though
// every reader observes the same stream of measurements.
type syncPoint[N int64 | float64] struct {
	vm *internal.ValueMap[N]
}

// syncInstrument is the SDK-side state backing every synchronous
// instrument (Counter, UpDownCounter, Histogram, Gauge), parameterized by
// its numeric type and fanned out across one syncPoint per pipeline.
type syncInstrument[N int64 | float64] struct {
	name        string
	description string
	unit        string
	kind        apimetric.InstrumentKind
	monotonic   bool
	points      []*syncPoint[N]
}

func newSyncInstrument[N int64 | float64](
	name string, cfg apimetric.InstrumentConfig, kind apimetric.InstrumentKind, monotonic bool,
	pipelines []*pipeline, scope instrumentation.Scope,
) *syncInstrument[N] {
	inst := &syncInstrument[N]{
		name:        name,
		description: cfg.Description,
		unit:        cfg.Unit,
		kind:        kind,
		monotonic:   monotonic,
	}
	for _, p := range pipelines {
		temporality := p.temporalityFor(kind)
		newAgg := newAggregatorFor[N](kind, temporality)
		pt := &syncPoint[N]{vm: internal.NewValueMap[N](newAgg, internal.DefaultCardinalityLimit)}
		inst.points = append(inst.points, pt)
		p.addInstrument(scope, inst.collectFuncFor(pt, temporality))
	}
	return inst
}

// newAggregatorFor picks the Aggregator implementation for kind, resetting
// on each Collect when temporality is Delta (Gauge never resets: a
// last-value has no meaningful delta).
func newAggregatorFor[N int64 | float64](kind apimetric.InstrumentKind, temporality data.Temporality) internal.NewFunc[N] {
	deltaReset := temporality == data.DeltaTemporality
	switch kind {
	case apimetric.InstrumentKindHistogram:
		return func() internal.Aggregator[N] {
			return internal.NewExplicitBucketHistogram[N](internal.DefaultHistogramBounds, deltaReset)
		}
	case apimetric.InstrumentKindGauge:
		return func() internal.Aggregator[N] { return internal.NewLastValue[N]() }
	default:
		return func() internal.Aggregator[N] { return internal.NewSum[N](deltaReset) }
	}
}

func (i *syncInstrument[N]) observe(value N, opts ...apimetric.MeasurementOption) {
	if i.monotonic && value < 0 {
		global.Handle(fmt.Errorf("otelcore: instrument %q is monotonic, dropping negative value %v", i.name, value))
		return
	}
	cfg := apimetric.NewMeasurementConfig(opts...)
	set := attribute.NewSet(cfg.Attributes...)
	for _, pt := range i.points {
		pt.vm.Measure(set, value)
	}
}

func (i *syncInstrument[N]) collectFuncFor(pt *syncPoint[N], temporality data.Temporality) collectFunc {
	return buildCollectFunc[N](i.name, i.description, i.unit, i.kind, i.monotonic, temporality, pt)
}

// buildCollectFunc renders a ValueMap's snapshots into the data.Metric
// shape matching kind. Shared by synchronous and observable instruments,
// which differ only in how their ValueMap gets populated.
func buildCollectFunc[N int64 | float64](
	name, description, unit string, kind apimetric.InstrumentKind, monotonic bool, temporality data.Temporality, pt *syncPoint[N],
) collectFunc {
	return func() (data.Metric, bool) {
		snaps := pt.vm.Collect()
		if len(snaps) == 0 {
			return data.Metric{}, false
		}
		m := data.Metric{Name: name, Description: description, Unit: unit}
		switch kind {
		case apimetric.InstrumentKindHistogram:
			hdp := make([]data.HistogramDataPoint[N], 0, len(snaps))
			for _, s := range snaps {
				hdp = append(hdp, data.HistogramDataPoint[N]{
					Attributes:   s.Attributes,
					Time:         s.Time,
					Count:        s.Count,
					Sum:          s.Value,
					Min:          s.Min,
					Max:          s.Max,
					HasMinMax:    s.HasMinMax,
					Bounds:       s.Bounds,
					BucketCounts: s.Buckets,
				})
			}
			m.Data = data.Histogram[N]{DataPoints: hdp, Temporality: temporality}
		case apimetric.InstrumentKindGauge, apimetric.InstrumentKindObservableGauge:
			dp := make([]data.DataPoint[N], 0, len(snaps))
			for _, s := range snaps {
				dp = append(dp, data.DataPoint[N]{Attributes: s.Attributes, Time: s.Time, Value: s.Value})
			}
			m.Data = data.Gauge[N]{DataPoints: dp}
		default:
			dp := make([]data.DataPoint[N], 0, len(snaps))
			for _, s := range snaps {
				dp = append(dp, data.DataPoint[N]{Attributes: s.Attributes, Time: s.Time, Value: s.Value})
			}
			m.Data = data.Sum[N]{DataPoints: dp, Temporality: temporality, IsMonotonic: monotonic}
		}
		return m, true
	}
}

// --- API-facing wrapper types, one per (instrument kind, number type) ---

type int64CounterInst struct{ inst *syncInstrument[int64] }

func (c int64CounterInst) Add(_ context.Context, incr int64, opts ...apimetric.MeasurementOption) {
	c.inst.observe(incr, opts...)
}

type float64CounterInst struct{ inst *syncInstrument[float64] }

func (c float64CounterInst) Add(_ context.Context, incr float64, opts ...apimetric.MeasurementOption) {
	c.inst.observe(incr, opts...)
}

type int64UpDownCounterInst struct{ inst *syncInstrument[int64] }

func (c int64UpDownCounterInst) Add(_ context.Context, incr int64, opts ...apimetric.MeasurementOption) {
	c.inst.observe(incr, opts...)
}

type float64UpDownCounterInst struct{ inst *syncInstrument[float64] }

func (c float64UpDownCounterInst) Add(_ context.Context, incr float64, opts ...apimetric.MeasurementOption) {
	c.inst.observe(incr, opts...)
}

type int64HistogramInst struct{ inst *syncInstrument[int64] }

func (h int64HistogramInst) Record(_ context.Context, incr int64, opts ...apimetric.MeasurementOption) {
	h.inst.observe(incr, opts...)
}

type float64HistogramInst struct{ inst *syncInstrument[float64] }

func (h float64HistogramInst) Record(_ context.Context, incr float64, opts ...apimetric.MeasurementOption) {
	h.inst.observe(incr, opts...)
}

type int64GaugeInst struct{ inst *syncInstrument[int64] }

func (g int64GaugeInst) Record(_ context.Context, value int64, opts ...apimetric.MeasurementOption) {
	g.inst.observe(value, opts...)
}

type float64GaugeInst struct{ inst *syncInstrument[float64] }

func (g float64GaugeInst) Record(_ context.Context, value float64, opts ...apimetric.MeasurementOption) {
	g.inst.observe(value, opts...)
}
