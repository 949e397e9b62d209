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

// Package metric is the user-facing API for recording measurements through
// Counter, UpDownCounter, Histogram, and Gauge instruments, synchronous and
// observable.
package metric // import "go.opentelemetry.io/otelcore/metric"

import (
	"context"

	"go.opentelemetry.io/otelcore/attribute"
)

// InstrumentKind identifies the semantics of an instrument, used by the SDK
// to select a default aggregation.
type InstrumentKind int

const (
	InstrumentKindUndefined InstrumentKind = iota
	InstrumentKindCounter
	InstrumentKindUpDownCounter
	InstrumentKindHistogram
	InstrumentKindGauge
	InstrumentKindObservableCounter
	InstrumentKindObservableUpDownCounter
	InstrumentKindObservableGauge
)

// InstrumentOption configures an instrument at creation time.
type InstrumentOption interface {
	applyInstrument(InstrumentConfig) InstrumentConfig
}

// InstrumentConfig is the set of options applied to an instrument.
type InstrumentConfig struct {
	Description string
	Unit        string
}

type instrumentOptionFunc func(InstrumentConfig) InstrumentConfig

func (f instrumentOptionFunc) applyInstrument(cfg InstrumentConfig) InstrumentConfig { return f(cfg) }

// WithDescription sets the instrument's human-readable description.
func WithDescription(desc string) InstrumentOption {
	return instrumentOptionFunc(func(cfg InstrumentConfig) InstrumentConfig {
		cfg.Description = desc
		return cfg
	})
}

// WithUnit sets the instrument's unit of measurement.
func WithUnit(unit string) InstrumentOption {
	return instrumentOptionFunc(func(cfg InstrumentConfig) InstrumentConfig {
		cfg.Unit = unit
		return cfg
	})
}

// NewInstrumentConfig applies opts in order and returns the resulting config.
func NewInstrumentConfig(opts ...InstrumentOption) InstrumentConfig {
	var cfg InstrumentConfig
	for _, opt := range opts {
		cfg = opt.applyInstrument(cfg)
	}
	return cfg
}

// MeasurementOption configures a single recorded measurement.
type MeasurementOption interface {
	applyMeasurement(MeasurementConfig) MeasurementConfig
}

// MeasurementConfig is the set of options applied to a single measurement.
type MeasurementConfig struct {
	Attributes []attribute.KeyValue
}

type measurementOptionFunc func(MeasurementConfig) MeasurementConfig

func (f measurementOptionFunc) applyMeasurement(cfg MeasurementConfig) MeasurementConfig {
	return f(cfg)
}

// WithAttributeSet attaches kv as the measurement's attribute set.
func WithAttributeSet(kv ...attribute.KeyValue) MeasurementOption {
	return measurementOptionFunc(func(cfg MeasurementConfig) MeasurementConfig {
		cfg.Attributes = append(cfg.Attributes, kv...)
		return cfg
	})
}

// NewMeasurementConfig applies opts in order and returns the resulting config.
func NewMeasurementConfig(opts ...MeasurementOption) MeasurementConfig {
	var cfg MeasurementConfig
	for _, opt := range opts {
		cfg = opt.applyMeasurement(cfg)
	}
	return cfg
}

// Int64Counter records monotonically increasing int64 values.
type Int64Counter interface {
	Add(ctx context.Context, incr int64, opts ...MeasurementOption)
}

// Float64Counter records monotonically increasing float64 values.
type Float64Counter interface {
	Add(ctx context.Context, incr float64, opts ...MeasurementOption)
}

// Int64UpDownCounter records int64 values that may increase or decrease.
type Int64UpDownCounter interface {
	Add(ctx context.Context, incr int64, opts ...MeasurementOption)
}

// Float64UpDownCounter records float64 values that may increase or decrease.
type Float64UpDownCounter interface {
	Add(ctx context.Context, incr float64, opts ...MeasurementOption)
}

// Int64Histogram records a distribution of int64 values.
type Int64Histogram interface {
	Record(ctx context.Context, incr int64, opts ...MeasurementOption)
}

// Float64Histogram records a distribution of float64 values.
type Float64Histogram interface {
	Record(ctx context.Context, incr float64, opts ...MeasurementOption)
}

// Int64Gauge records a non-additive, last-value-wins int64 measurement.
type Int64Gauge interface {
	Record(ctx context.Context, value int64, opts ...MeasurementOption)
}

// Float64Gauge records a non-additive, last-value-wins float64 measurement.
type Float64Gauge interface {
	Record(ctx context.Context, value float64, opts ...MeasurementOption)
}

// Observer is passed to a callback registered on an observable instrument
// to report its measurements.
type Observer interface {
	ObserveInt64(inst Int64Observable, value int64, opts ...MeasurementOption)
	ObserveFloat64(inst Float64Observable, value float64, opts ...MeasurementOption)
}

// Int64Observable marks an instrument observable via an int64 callback.
type Int64Observable interface{ int64Observable() }

// Float64Observable marks an instrument observable via a float64 callback.
type Float64Observable interface{ float64Observable() }

// Int64Callback reports one or more measurements for an observable
// instrument when the Meter's Reader collects.
type Int64Callback func(ctx context.Context, obs Observer) error

// Float64Callback reports one or more measurements for an observable
// instrument when the Meter's Reader collects.
type Float64Callback func(ctx context.Context, obs Observer) error

// Registration is a handle to a registered callback, used to unregister it.
type Registration interface {
	Unregister() error
}

// Meter provides access to instruments of a single instrumentation scope.
type Meter interface {
	Int64Counter(name string, opts ...InstrumentOption) (Int64Counter, error)
	Float64Counter(name string, opts ...InstrumentOption) (Float64Counter, error)
	Int64UpDownCounter(name string, opts ...InstrumentOption) (Int64UpDownCounter, error)
	Float64UpDownCounter(name string, opts ...InstrumentOption) (Float64UpDownCounter, error)
	Int64Histogram(name string, opts ...InstrumentOption) (Int64Histogram, error)
	Float64Histogram(name string, opts ...InstrumentOption) (Float64Histogram, error)
	Int64Gauge(name string, opts ...InstrumentOption) (Int64Gauge, error)
	Float64Gauge(name string, opts ...InstrumentOption) (Float64Gauge, error)

	Int64ObservableCounter(name string, opts ...InstrumentOption) (Int64Observable, error)
	Float64ObservableCounter(name string, opts ...InstrumentOption) (Float64Observable, error)
	Int64ObservableUpDownCounter(name string, opts ...InstrumentOption) (Int64Observable, error)
	Float64ObservableUpDownCounter(name string, opts ...InstrumentOption) (Float64Observable, error)
	Int64ObservableGauge(name string, opts ...InstrumentOption) (Int64Observable, error)
	Float64ObservableGauge(name string, opts ...InstrumentOption) (Float64Observable, error)

	RegisterCallback(callback func(context.Context, Observer) error, instruments ...interface{}) (Registration, error)
}

// MeterProvider provides access to Meters.
type MeterProvider interface {
	Meter(name string, opts ...MeterOption) Meter
}

// MeterConfig is the set of options applied when a Meter is obtained.
type MeterConfig struct {
	InstrumentationVersion string
	SchemaURL              string
}

// MeterOption applies a value to a MeterConfig.
type MeterOption interface {
	applyMeter(MeterConfig) MeterConfig
}

type meterOptionFunc func(MeterConfig) MeterConfig

func (f meterOptionFunc) applyMeter(cfg MeterConfig) MeterConfig { return f(cfg) }

// WithInstrumentationVersion sets the instrumentation scope's version.
func WithInstrumentationVersion(version string) MeterOption {
	return meterOptionFunc(func(cfg MeterConfig) MeterConfig {
		cfg.InstrumentationVersion = version
		return cfg
	})
}

// WithSchemaURL sets the instrumentation scope's schema URL.
func WithSchemaURL(schemaURL string) MeterOption {
	return meterOptionFunc(func(cfg MeterConfig) MeterConfig {
		cfg.SchemaURL = schemaURL
		return cfg
	})
}

// NewMeterConfig applies opts in order and returns the resulting config.
func NewMeterConfig(opts ...MeterOption) MeterConfig {
	var cfg MeterConfig
	for _, opt := range opts {
		cfg = opt.applyMeter(cfg)
	}
	return cfg
}
