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
	"sync/atomic"

	"go.opentelemetry.io/otelcore/attribute"
	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
	"go.opentelemetry.io/otelcore/sdk/metric/internal"
)

// observableInstrument is the SDK-side state backing an observable
// (callback-reported) instrument. Its values are written by an
// observerImpl during a callback invocation, then read during collection,
// exactly like a synchronous instrument's ValueMap.
type observableInstrument[N int64 | float64] struct {
	name        string
	description string
	unit        string
	kind        apimetric.InstrumentKind
	points      []*syncPoint[N]
}

func newObservableInstrument[N int64 | float64](
	name string, cfg apimetric.InstrumentConfig, kind apimetric.InstrumentKind, pipelines []*pipeline, scope instrumentation.Scope,
) *observableInstrument[N] {
	inst := &observableInstrument[N]{name: name, description: cfg.Description, unit: cfg.Unit, kind: kind}
	for _, p := range pipelines {
		temporality := p.temporalityFor(kind)
		newAgg := newObservableAggregatorFor[N](kind, temporality)
		pt := &syncPoint[N]{vm: internal.NewValueMap[N](newAgg, internal.DefaultCardinalityLimit)}
		inst.points = append(inst.points, pt)
		p.addInstrument(scope, inst.collectFuncFor(pt, temporality))
	}
	return inst
}

func (i *observableInstrument[N]) collectFuncFor(pt *syncPoint[N], temporality data.Temporality) collectFunc {
	monotonic := i.kind == apimetric.InstrumentKindObservableCounter
	return buildCollectFunc[N](i.name, i.description, i.unit, i.kind, monotonic, temporality, pt)
}

// newObservableAggregatorFor selects PrecomputedSum for counter-shaped
// observable instruments (the callback reports a running total, not an
// increment) and LastValue for observable gauges.
func newObservableAggregatorFor[N int64 | float64](kind apimetric.InstrumentKind, temporality data.Temporality) internal.NewFunc[N] {
	if kind == apimetric.InstrumentKindObservableGauge {
		return func() internal.Aggregator[N] { return internal.NewLastValue[N]() }
	}
	deltaReset := temporality == data.DeltaTemporality
	return func() internal.Aggregator[N] { return internal.NewPrecomputedSum[N](deltaReset) }
}

// int64ObservableInst and float64ObservableInst are the concrete types
// returned to application code through the apimetric.Int64Observable /
// Float64Observable marker interfaces, so an Observer callback can
// recognize which instrument a reported value belongs to.
type int64ObservableInst struct{ *observableInstrument[int64] }

func (int64ObservableInst) int64Observable() {}

type float64ObservableInst struct{ *observableInstrument[float64] }

func (float64ObservableInst) float64Observable() {}

// observerImpl is handed to every registered callback during a single
// pipeline's collection. It only writes a reported value into the
// instrument it actually targets; reports made against this observer for
// a different pipeline index never happen, since one observerImpl is
// scoped to exactly one pipeline.
type observerImpl struct {
	pipelineIdx int
}

var _ apimetric.Observer = (*observerImpl)(nil)

func (o *observerImpl) ObserveInt64(inst apimetric.Int64Observable, value int64, opts ...apimetric.MeasurementOption) {
	target, ok := inst.(int64ObservableInst)
	if !ok || o.pipelineIdx >= len(target.points) {
		return
	}
	cfg := apimetric.NewMeasurementConfig(opts...)
	set := attribute.NewSet(cfg.Attributes...)
	target.points[o.pipelineIdx].vm.Measure(set, value)
}

func (o *observerImpl) ObserveFloat64(inst apimetric.Float64Observable, value float64, opts ...apimetric.MeasurementOption) {
	target, ok := inst.(float64ObservableInst)
	if !ok || o.pipelineIdx >= len(target.points) {
		return
	}
	cfg := apimetric.NewMeasurementConfig(opts...)
	set := attribute.NewSet(cfg.Attributes...)
	target.points[o.pipelineIdx].vm.Measure(set, value)
}

// callbackRegistration lets the caller stop a registered callback from
// running on future collections.
type callbackRegistration struct {
	meter *meter
	token string
}

func (r *callbackRegistration) Unregister() error {
	r.meter.mu.Lock()
	defer r.meter.mu.Unlock()
	filtered := r.meter.callbacks[:0]
	for _, cb := range r.meter.callbacks {
		if cb.token == r.token {
			continue
		}
		filtered = append(filtered, cb)
	}
	r.meter.callbacks = filtered
	return nil
}

// registeredCallback pairs a callback with a token unique enough to make
// Unregister practical without relying on comparing func values, which Go
// forbids directly.
type registeredCallback struct {
	fn    func(context.Context, apimetric.Observer) error
	token string
}

// callbackTokenSeq numbers registrations so that no two tokens are equal,
// even after earlier registrations have been removed.
var callbackTokenSeq atomic.Uint64

func newCallbackToken(m *meter) string {
	return fmt.Sprintf("%p-%d", m, callbackTokenSeq.Add(1))
}
