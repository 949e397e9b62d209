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

package trace // import "go.opentelemetry.io/otelcore/trace"

import (
	"time"

	"go.opentelemetry.io/otelcore/attribute"
)

// TracerConfig is the set of options applied when a Tracer is obtained from
// a TracerProvider.
type TracerConfig struct {
	InstrumentationVersion string
	SchemaURL              string
	InstrumentationAttrs   []attribute.KeyValue
}

// TracerOption applies a value to a TracerConfig.
type TracerOption interface {
	applyTracer(TracerConfig) TracerConfig
}

type tracerOptionFunc func(TracerConfig) TracerConfig

func (f tracerOptionFunc) applyTracer(cfg TracerConfig) TracerConfig { return f(cfg) }

// WithInstrumentationVersion sets the instrumentation scope's version.
func WithInstrumentationVersion(version string) TracerOption {
	return tracerOptionFunc(func(cfg TracerConfig) TracerConfig {
		cfg.InstrumentationVersion = version
		return cfg
	})
}

// WithSchemaURL sets the instrumentation scope's schema URL.
func WithSchemaURL(schemaURL string) TracerOption {
	return tracerOptionFunc(func(cfg TracerConfig) TracerConfig {
		cfg.SchemaURL = schemaURL
		return cfg
	})
}

// NewTracerConfig applies opts in order and returns the resulting config.
func NewTracerConfig(opts ...TracerOption) TracerConfig {
	var cfg TracerConfig
	for _, opt := range opts {
		cfg = opt.applyTracer(cfg)
	}
	return cfg
}

// SpanConfig is the set of options applied to a span at Start or End time.
type SpanConfig struct {
	Attributes []attribute.KeyValue
	Timestamp  time.Time
	Links      []Link
	NewRoot    bool
	SpanKind   SpanKind
	StackTrace bool
}

// SpanStartOption applies a value to a SpanConfig at span-creation time.
type SpanStartOption interface {
	applySpanStart(SpanConfig) SpanConfig
}

// SpanEndOption applies a value to a SpanConfig at span-end time.
type SpanEndOption interface {
	applySpanEnd(SpanConfig) SpanConfig
}

type spanOptionFunc func(SpanConfig) SpanConfig

func (f spanOptionFunc) applySpanStart(cfg SpanConfig) SpanConfig { return f(cfg) }
func (f spanOptionFunc) applySpanEnd(cfg SpanConfig) SpanConfig   { return f(cfg) }

// WithTimestamp sets an explicit start or end time, overriding "now".
func WithTimestamp(t time.Time) spanOptionFunc {
	return func(cfg SpanConfig) SpanConfig {
		cfg.Timestamp = t
		return cfg
	}
}

// attributesOption carries attributes applicable to either a span (at
// creation) or a single event, so WithAttributes reads naturally in both
// call sites without colliding on name.
type attributesOption []attribute.KeyValue

func (o attributesOption) applySpanStart(cfg SpanConfig) SpanConfig {
	cfg.Attributes = append(cfg.Attributes, []attribute.KeyValue(o)...)
	return cfg
}

func (o attributesOption) applyEvent(cfg EventConfig) EventConfig {
	cfg.Attributes = append(cfg.Attributes, []attribute.KeyValue(o)...)
	return cfg
}

// WithAttributes attaches attributes to a span (at creation) or to an
// event, depending on where it is passed.
func WithAttributes(kv ...attribute.KeyValue) attributesOption {
	return attributesOption(kv)
}

// WithLinks attaches links at span-creation time.
func WithLinks(links ...Link) spanOptionFunc {
	return func(cfg SpanConfig) SpanConfig {
		cfg.Links = append(cfg.Links, links...)
		return cfg
	}
}

// WithNewRoot forces the new span to start a new trace, ignoring any active
// parent span in the Context.
func WithNewRoot() spanOptionFunc {
	return func(cfg SpanConfig) SpanConfig {
		cfg.NewRoot = true
		return cfg
	}
}

// WithSpanKind sets the span's kind.
func WithSpanKind(kind SpanKind) spanOptionFunc {
	return func(cfg SpanConfig) SpanConfig {
		cfg.SpanKind = kind
		return cfg
	}
}

// WithStackTrace records a stack trace on RecordError / End, when supported.
func WithStackTrace(b bool) spanOptionFunc {
	return func(cfg SpanConfig) SpanConfig {
		cfg.StackTrace = b
		return cfg
	}
}

// NewSpanStartConfig applies opts in order and returns the resulting config.
func NewSpanStartConfig(opts ...SpanStartOption) SpanConfig {
	var cfg SpanConfig
	for _, opt := range opts {
		cfg = opt.applySpanStart(cfg)
	}
	return cfg
}

// NewSpanEndConfig applies opts in order and returns the resulting config.
func NewSpanEndConfig(opts ...SpanEndOption) SpanConfig {
	var cfg SpanConfig
	for _, opt := range opts {
		cfg = opt.applySpanEnd(cfg)
	}
	return cfg
}

// EventConfig is the set of options applied to a single event (including
// errors recorded via Span.RecordError).
type EventConfig struct {
	Attributes []attribute.KeyValue
	Timestamp  time.Time
	StackTrace bool
}

// EventOption applies a value to an EventConfig.
type EventOption interface {
	applyEvent(EventConfig) EventConfig
}

type eventOptionFunc func(EventConfig) EventConfig

func (f eventOptionFunc) applyEvent(cfg EventConfig) EventConfig { return f(cfg) }

// NewEventConfig applies opts in order and returns the resulting config.
func NewEventConfig(opts ...EventOption) EventConfig {
	var cfg EventConfig
	for _, opt := range opts {
		cfg = opt.applyEvent(cfg)
	}
	if cfg.Timestamp.IsZero() {
		cfg.Timestamp = time.Now()
	}
	return cfg
}
