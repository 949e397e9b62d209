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

package trace // import "go.opentelemetry.io/otelcore/sdk/trace"

import (
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/codes"
	"go.opentelemetry.io/otelcore/resource"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
	apitrace "go.opentelemetry.io/otelcore/trace"
)

// ReadOnlySpan is the immutable view of a span handed to SpanProcessors and
// SpanExporters. It is backed by a recordingSpan but exposes none of its
// mutators, so an exporter cannot accidentally modify a span still being
// built by the application (spec.md §4.5 / §6).
type ReadOnlySpan interface {
	Name() string
	SpanContext() apitrace.SpanContext
	Parent() apitrace.SpanContext
	SpanKind() apitrace.SpanKind
	StartTime() time.Time
	EndTime() time.Time
	Attributes() []attribute.KeyValue
	Links() []apitrace.Link
	Events() []apitrace.Event
	Status() apitrace.Status
	InstrumentationScope() instrumentation.Scope
	Resource() *resource.Resource
	DroppedAttributes() int
	DroppedLinks() int
	DroppedEvents() int
	ChildSpanCount() int
}

// ReadWriteSpan is the span handle given to SpanProcessor.OnStart: readable
// like a ReadOnlySpan and mutable like the API's Span, so a processor may
// both inspect and enrich a span before it is exported (spec.md §4.6).
type ReadWriteSpan interface {
	ReadOnlySpan
	apitrace.Span
}

// recordingSpan is the SDK's concrete Span implementation. All exported
// methods are safe for concurrent use; mu guards every field that can be
// observed after End (spec.md §5, spans may be read by a processor's
// background worker while the application goroutine still holds a
// reference).
type recordingSpan struct {
	mu sync.Mutex

	name       string
	sc         apitrace.SpanContext
	parent     apitrace.SpanContext
	kind       apitrace.SpanKind
	startTime  time.Time
	endTime    time.Time
	ended      bool

	attrs      []attribute.KeyValue
	events     evictedQueue[apitrace.Event]
	links      evictedQueue[apitrace.Link]
	status     apitrace.Status

	childSpanCount int

	tracer *tracer

	recording bool
}

var _ ReadWriteSpan = (*recordingSpan)(nil)

func (s *recordingSpan) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *recordingSpan) SpanContext() apitrace.SpanContext { return s.sc }

func (s *recordingSpan) Parent() apitrace.SpanContext { return s.parent }

func (s *recordingSpan) SpanKind() apitrace.SpanKind { return s.kind }

func (s *recordingSpan) StartTime() time.Time { return s.startTime }

func (s *recordingSpan) EndTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endTime
}

func (s *recordingSpan) Attributes() []attribute.KeyValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dedupeAttributesLocked()
	out := make([]attribute.KeyValue, len(s.attrs))
	copy(out, s.attrs)
	return out
}

func (s *recordingSpan) Links() []apitrace.Link {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]apitrace.Link, len(s.links.queue))
	copy(out, s.links.queue)
	return out
}

func (s *recordingSpan) Events() []apitrace.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]apitrace.Event, len(s.events.queue))
	copy(out, s.events.queue)
	return out
}

func (s *recordingSpan) Status() apitrace.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *recordingSpan) InstrumentationScope() instrumentation.Scope {
	return s.tracer.instrumentationScope
}

func (s *recordingSpan) Resource() *resource.Resource {
	return s.tracer.provider.resource
}

func (s *recordingSpan) DroppedAttributes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attrs) - s.attributeCountLocked()
}

func (s *recordingSpan) attributeCountLocked() int {
	limit := s.tracer.provider.spanLimits.AttributeCountLimit
	if limit < 0 || len(s.attrs) <= limit {
		return len(s.attrs)
	}
	return limit
}

func (s *recordingSpan) DroppedLinks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.links.dropped
}

func (s *recordingSpan) DroppedEvents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.dropped
}

func (s *recordingSpan) ChildSpanCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.childSpanCount
}

func (s *recordingSpan) TracerProvider() apitrace.TracerProvider { return s.tracer.provider }

func (s *recordingSpan) IsRecording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.ended && s.recording
}

// SetName updates the span's display name. A no-op once the span has ended.
func (s *recordingSpan) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.name = name
}

// SetStatus sets the span's status, refusing to downgrade an Ok status back
// to Unset or Error (OTel API spec: "SetStatus MUST ignore ... if the
// existing status code is Ok").
func (s *recordingSpan) SetStatus(code codes.Code, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended || !s.recording {
		return
	}
	if s.status.Code == codes.Ok {
		return
	}
	s.status.Code = code
	if code == codes.Error {
		s.status.Description = description
	}
}

// SetAttributes adds or overwrites attributes, subject to the attribute
// count and value-length limits configured on the owning TracerProvider.
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended || !s.recording {
		return
	}
	limits := s.tracer.provider.spanLimits
	for _, a := range kv {
		if !a.Valid() {
			continue
		}
		a = truncateAttribute(a, limits.AttributeValueLengthLimit)
		s.setAttributeLocked(a, limits.AttributeCountLimit)
	}
}

func (s *recordingSpan) setAttributeLocked(a attribute.KeyValue, limit int) {
	for i, existing := range s.attrs {
		if existing.Key == a.Key {
			s.attrs[i] = a
			return
		}
	}
	if limit >= 0 && len(s.attrs) >= limit {
		return
	}
	s.attrs = append(s.attrs, a)
}

func (s *recordingSpan) dedupeAttributesLocked() {
	// Attributes are kept overwrite-in-place by setAttributeLocked, so the
	// slice is already de-duplicated; this hook exists for symmetry with
	// the count-limit accessor and future compaction needs.
}

// AddEvent attaches a timestamped event, subject to the span's event cap
// and each event's own attribute cap.
func (s *recordingSpan) AddEvent(name string, options ...apitrace.EventOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended || !s.recording {
		return
	}
	cfg := apitrace.NewEventConfig(options...)
	limits := s.tracer.provider.spanLimits
	attrs := cfg.Attributes
	if limits.AttributePerEventCountLimit >= 0 && len(attrs) > limits.AttributePerEventCountLimit {
		attrs = attrs[:limits.AttributePerEventCountLimit]
	}
	s.events.add(apitrace.Event{Name: name, Attributes: attrs, Time: cfg.Timestamp})
}

// RecordError records err as an exception event, following the
// "exception.type" / "exception.message" semantic convention.
func (s *recordingSpan) RecordError(err error, options ...apitrace.EventOption) {
	if err == nil {
		return
	}
	s.mu.Lock()
	if s.ended || !s.recording {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	opts := append([]apitrace.EventOption{apitrace.WithAttributes(
		attribute.String("exception.type", fmt.Sprintf("%T", err)),
		attribute.String("exception.message", err.Error()),
	)}, options...)
	s.AddEvent("exception", opts...)
}

// End completes the span. Only the first call has any effect; subsequent
// calls are no-ops, matching the API's idempotent End contract.
func (s *recordingSpan) End(options ...apitrace.SpanEndOption) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	cfg := apitrace.NewSpanEndConfig(options...)
	s.endTime = cfg.Timestamp
	if s.endTime.IsZero() {
		s.endTime = time.Now()
	}
	s.ended = true
	recording := s.recording
	s.mu.Unlock()

	if recording {
		s.tracer.provider.processors.onEnd(s)
	}
}

func truncateAttribute(a attribute.KeyValue, limit int) attribute.KeyValue {
	if limit < 0 {
		return a
	}
	switch a.Value.Type() {
	case attribute.STRING:
		if v := a.Value.AsString(); len(v) > limit {
			a.Value = attribute.StringValue(v[:limit])
		}
	case attribute.STRINGSLICE:
		vs := a.Value.AsStringSlice()
		truncated := make([]string, len(vs))
		for i, v := range vs {
			if len(v) > limit {
				v = v[:limit]
			}
			truncated[i] = v
		}
		a.Value = attribute.StringSliceValue(truncated)
	}
	return a
}

// droppedSpan is returned by a Tracer when the sampler decides Drop: it
// carries a valid SpanContext for propagation but records nothing.
type droppedSpan struct {
	sc     apitrace.SpanContext
	tracer *tracer
}

var _ apitrace.Span = droppedSpan{}

func (s droppedSpan) End(...apitrace.SpanEndOption)           {}
func (s droppedSpan) AddEvent(string, ...apitrace.EventOption) {}
func (s droppedSpan) IsRecording() bool                        { return false }
func (s droppedSpan) RecordError(error, ...apitrace.EventOption) {}
func (s droppedSpan) SpanContext() apitrace.SpanContext        { return s.sc }
func (s droppedSpan) SetStatus(codes.Code, string)              {}
func (s droppedSpan) SetName(string)                            {}
func (s droppedSpan) SetAttributes(...attribute.KeyValue)        {}
func (s droppedSpan) TracerProvider() apitrace.TracerProvider   { return s.tracer.provider }
