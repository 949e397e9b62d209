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
	"sync"

	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
)

// meter is the SDK's apimetric.Meter implementation: a factory for
// instruments bound to this scope, plus the observable callbacks
// registered against them.
type meter struct {
	scope     instrumentation.Scope
	pipelines []*pipeline

	mu        sync.Mutex
	callbacks []registeredCallback
}

var _ apimetric.Meter = (*meter)(nil)

func newMeter(scope instrumentation.Scope, pipelines []*pipeline) *meter {
	m := &meter{scope: scope, pipelines: pipelines}
	for i, p := range pipelines {
		idx := i
		p.addInstrument(scope, m.primeFuncFor(idx))
	}
	return m
}

// primeFuncFor returns a collectFunc that runs every callback registered on
// this meter against pipeline idx's observer, populating that pipeline's
// observable instrument ValueMaps before they are individually collected.
// It is registered first in the scope's collectFunc slice so observable
// instruments registered later in the same slice see fresh values, and it
// never itself contributes a Metric.
func (m *meter) primeFuncFor(idx int) collectFunc {
	return func() (data.Metric, bool) {
		m.mu.Lock()
		callbacks := make([]registeredCallback, len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		obs := &observerImpl{pipelineIdx: idx}
		for _, cb := range callbacks {
			_ = cb.fn(context.Background(), obs)
		}
		return data.Metric{}, false
	}
}

func (m *meter) Int64Counter(name string, opts ...apimetric.InstrumentOption) (apimetric.Int64Counter, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newSyncInstrument[int64](name, cfg, apimetric.InstrumentKindCounter, true, m.pipelines, m.scope)
	return int64CounterInst{inst: inst}, nil
}

func (m *meter) Float64Counter(name string, opts ...apimetric.InstrumentOption) (apimetric.Float64Counter, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newSyncInstrument[float64](name, cfg, apimetric.InstrumentKindCounter, true, m.pipelines, m.scope)
	return float64CounterInst{inst: inst}, nil
}

func (m *meter) Int64UpDownCounter(name string, opts ...apimetric.InstrumentOption) (apimetric.Int64UpDownCounter, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newSyncInstrument[int64](name, cfg, apimetric.InstrumentKindUpDownCounter, false, m.pipelines, m.scope)
	return int64UpDownCounterInst{inst: inst}, nil
}

func (m *meter) Float64UpDownCounter(name string, opts ...apimetric.InstrumentOption) (apimetric.Float64UpDownCounter, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newSyncInstrument[float64](name, cfg, apimetric.InstrumentKindUpDownCounter, false, m.pipelines, m.scope)
	return float64UpDownCounterInst{inst: inst}, nil
}

func (m *meter) Int64Histogram(name string, opts ...apimetric.InstrumentOption) (apimetric.Int64Histogram, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newSyncInstrument[int64](name, cfg, apimetric.InstrumentKindHistogram, false, m.pipelines, m.scope)
	return int64HistogramInst{inst: inst}, nil
}

func (m *meter) Float64Histogram(name string, opts ...apimetric.InstrumentOption) (apimetric.Float64Histogram, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newSyncInstrument[float64](name, cfg, apimetric.InstrumentKindHistogram, false, m.pipelines, m.scope)
	return float64HistogramInst{inst: inst}, nil
}

func (m *meter) Int64Gauge(name string, opts ...apimetric.InstrumentOption) (apimetric.Int64Gauge, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newSyncInstrument[int64](name, cfg, apimetric.InstrumentKindGauge, false, m.pipelines, m.scope)
	return int64GaugeInst{inst: inst}, nil
}

func (m *meter) Float64Gauge(name string, opts ...apimetric.InstrumentOption) (apimetric.Float64Gauge, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newSyncInstrument[float64](name, cfg, apimetric.InstrumentKindGauge, false, m.pipelines, m.scope)
	return float64GaugeInst{inst: inst}, nil
}

func (m *meter) Int64ObservableCounter(name string, opts ...apimetric.InstrumentOption) (apimetric.Int64Observable, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newObservableInstrument[int64](name, cfg, apimetric.InstrumentKindObservableCounter, m.pipelines, m.scope)
	return int64ObservableInst{inst}, nil
}

func (m *meter) Float64ObservableCounter(name string, opts ...apimetric.InstrumentOption) (apimetric.Float64Observable, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newObservableInstrument[float64](name, cfg, apimetric.InstrumentKindObservableCounter, m.pipelines, m.scope)
	return float64ObservableInst{inst}, nil
}

func (m *meter) Int64ObservableUpDownCounter(name string, opts ...apimetric.InstrumentOption) (apimetric.Int64Observable, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newObservableInstrument[int64](name, cfg, apimetric.InstrumentKindObservableUpDownCounter, m.pipelines, m.scope)
	return int64ObservableInst{inst}, nil
}

func (m *meter) Float64ObservableUpDownCounter(name string, opts ...apimetric.InstrumentOption) (apimetric.Float64Observable, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newObservableInstrument[float64](name, cfg, apimetric.InstrumentKindObservableUpDownCounter, m.pipelines, m.scope)
	return float64ObservableInst{inst}, nil
}

func (m *meter) Int64ObservableGauge(name string, opts ...apimetric.InstrumentOption) (apimetric.Int64Observable, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newObservableInstrument[int64](name, cfg, apimetric.InstrumentKindObservableGauge, m.pipelines, m.scope)
	return int64ObservableInst{inst}, nil
}

func (m *meter) Float64ObservableGauge(name string, opts ...apimetric.InstrumentOption) (apimetric.Float64Observable, error) {
	cfg := apimetric.NewInstrumentConfig(opts...)
	inst := newObservableInstrument[float64](name, cfg, apimetric.InstrumentKindObservableGauge, m.pipelines, m.scope)
	return float64ObservableInst{inst}, nil
}

// RegisterCallback registers callback to run on every collection cycle.
// instruments is accepted for API compatibility but not used: the Observer
// passed to callback records every ObserveInt64/ObserveFloat64 call into
// the instrument it names, whether or not that instrument was listed in
// instruments.
func (m *meter) RegisterCallback(callback func(context.Context, apimetric.Observer) error, instruments ...interface{}) (apimetric.Registration, error) {
	m.mu.Lock()
	token := newCallbackToken(m)
	m.callbacks = append(m.callbacks, registeredCallback{fn: callback, token: token})
	m.mu.Unlock()
	return &callbackRegistration{meter: m, token: token}, nil
}
