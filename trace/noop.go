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

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/codes"
)

// NewNoopTracerProvider returns a TracerProvider that returns Tracers
// producing no-op, non-recording Spans. It is useful as a safe default
// before a real TracerProvider is installed.
func NewNoopTracerProvider() TracerProvider { return noopTracerProvider{} }

type noopTracerProvider struct{}

func (noopTracerProvider) Tracer(string, ...TracerOption) Tracer { return noopTracer{} }

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string, _ ...SpanStartOption) (context.Context, Span) {
	span := noopSpan{sc: SpanContextFromContext(ctx)}
	return ContextWithSpan(ctx, span), span
}

// noopSpan is a Span that discards everything. It is also used to carry a
// propagated remote SpanContext without becoming a recording span.
type noopSpan struct{ sc SpanContext }

// nonRecordingSpan is a distinct, unexported alias used by
// ContextWithSpanContext so its intent ("carry identity, record nothing")
// reads clearly at call sites, even though its behavior matches noopSpan.
type nonRecordingSpan struct{ sc SpanContext }

func (s nonRecordingSpan) End(...SpanEndOption)                  {}
func (s nonRecordingSpan) AddEvent(string, ...EventOption)       {}
func (s nonRecordingSpan) IsRecording() bool                     { return false }
func (s nonRecordingSpan) RecordError(error, ...EventOption)     {}
func (s nonRecordingSpan) SpanContext() SpanContext              { return s.sc }
func (s nonRecordingSpan) SetStatus(codes.Code, string)          {}
func (s nonRecordingSpan) SetName(string)                        {}
func (s nonRecordingSpan) SetAttributes(...attribute.KeyValue)   {}
func (s nonRecordingSpan) TracerProvider() TracerProvider        { return noopTracerProvider{} }

func (s noopSpan) End(...SpanEndOption)                {}
func (s noopSpan) AddEvent(string, ...EventOption)     {}
func (s noopSpan) IsRecording() bool                   { return false }
func (s noopSpan) RecordError(error, ...EventOption)   {}
func (s noopSpan) SpanContext() SpanContext            { return s.sc }
func (s noopSpan) SetStatus(codes.Code, string)        {}
func (s noopSpan) SetName(string)                      {}
func (s noopSpan) SetAttributes(...attribute.KeyValue) {}
func (s noopSpan) TracerProvider() TracerProvider      { return noopTracerProvider{} }

var (
	_ Span = noopSpan{}
	_ Span = nonRecordingSpan{}
)
