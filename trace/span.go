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
	"context"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/codes"
)

// SpanKind describes the relationship between a span and its remote peers.
type SpanKind int

const (
	SpanKindUnspecified SpanKind = iota
	SpanKindInternal
	SpanKindServer
	SpanKindClient
	SpanKindProducer
	SpanKindConsumer
)

func (sk SpanKind) String() string {
	switch sk {
	case SpanKindInternal:
		return "internal"
	case SpanKindServer:
		return "server"
	case SpanKindClient:
		return "client"
	case SpanKindProducer:
		return "producer"
	case SpanKindConsumer:
		return "consumer"
	default:
		return "unspecified"
	}
}

// Status is the span's status, as last set by Span.SetStatus.
type Status struct {
	Code        codes.Code
	Description string
}

// Link associates a span with another span via a SpanContext, with its own
// attributes.
type Link struct {
	SpanContext SpanContext
	Attributes  []attribute.KeyValue
}

// Event is a timestamped annotation attached to a span.
type Event struct {
	Name       string
	Attributes []attribute.KeyValue
	Time       time.Time
}

// Span is the user-facing handle returned by Tracer.Start. All methods are
// safe to call after the span has ended; they become no-ops (spec.md §4.5).
type Span interface {
	// End completes the span. The first call wins; later calls are no-ops.
	End(options ...SpanEndOption)

	// AddEvent attaches a timestamped event, subject to the span's bounded
	// event cap.
	AddEvent(name string, options ...EventOption)

	// IsRecording reports whether the span is recording information like
	// events and attributes (a RecordOnly or RecordAndSample decision).
	IsRecording() bool

	// RecordError records err as an exception event.
	RecordError(err error, options ...EventOption)

	// SpanContext returns the span's immutable identity.
	SpanContext() SpanContext

	// SetStatus sets the span's status; once the status is Ok, later calls
	// are ignored, matching the OTel API spec's "do not downgrade" rule.
	SetStatus(code codes.Code, description string)

	// SetName updates the span's display name.
	SetName(name string)

	// SetAttributes adds or overwrites attributes, subject to the span's
	// bounded attribute cap.
	SetAttributes(kv ...attribute.KeyValue)

	// TracerProvider returns a TracerProvider that produced the Tracer
	// that produced this Span.
	TracerProvider() TracerProvider
}

// Tracer creates Spans according to a Sampler and SpanProcessor chain
// configured on the TracerProvider that produced it.
type Tracer interface {
	// Start starts a new Span and returns it along with a Context that
	// carries it as the new active span.
	Start(ctx context.Context, spanName string, opts ...SpanStartOption) (context.Context, Span)
}

// TracerProvider provides access to Tracers.
type TracerProvider interface {
	// Tracer returns a Tracer for the named instrumentation scope.
	Tracer(name string, opts ...TracerOption) Tracer
}
