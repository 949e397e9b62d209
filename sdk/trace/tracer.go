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
	"context"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
	apitrace "go.opentelemetry.io/otelcore/trace"
)

// tracer is the SDK's apitrace.Tracer implementation. It is cheap to hold;
// all mutable state lives on the owning TracerProvider.
type tracer struct {
	provider             *TracerProvider
	instrumentationScope instrumentation.Scope
}

var _ apitrace.Tracer = (*tracer)(nil)

// Start implements the span-creation algorithm: resolve the parent, mint
// IDs, consult the Sampler, and (if recording) notify every SpanProcessor's
// OnStart before returning (spec.md §4.5).
func (t *tracer) Start(ctx context.Context, name string, opts ...apitrace.SpanStartOption) (context.Context, apitrace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := apitrace.NewSpanStartConfig(opts...)

	var parent apitrace.SpanContext
	if !cfg.NewRoot {
		parent = apitrace.SpanContextFromContext(ctx)
	}

	var traceID apitrace.TraceID
	var spanID apitrace.SpanID
	if parent.IsValid() {
		traceID = parent.TraceID()
		spanID = t.provider.idGenerator.NewSpanID(ctx, traceID)
	} else {
		traceID, spanID = t.provider.idGenerator.NewIDs(ctx)
	}

	result := t.provider.sampler.ShouldSample(SamplingParameters{
		ParentContext: parent,
		TraceID:       traceID,
		Name:          name,
		Kind:          cfg.SpanKind,
		Attributes:    cfg.Attributes,
		Links:         cfg.Links,
	})

	flags := apitrace.TraceFlags(0)
	if result.Decision == RecordAndSample {
		flags = flags.WithSampled(true)
	}
	sc := apitrace.NewSpanContext(apitrace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
		TraceState: result.Tracestate,
	})

	if result.Decision == Drop {
		span := droppedSpan{sc: sc, tracer: t}
		return apitrace.ContextWithSpan(ctx, span), span
	}

	if parent.IsValid() {
		if ps, ok := apitrace.SpanFromContext(ctx).(*recordingSpan); ok {
			ps.mu.Lock()
			ps.childSpanCount++
			ps.mu.Unlock()
		}
	}

	limits := t.provider.spanLimits
	startTime := cfg.Timestamp
	if startTime.IsZero() {
		startTime = time.Now()
	}

	attrs := make([]attribute.KeyValue, 0, len(cfg.Attributes)+len(result.Attributes))
	for _, a := range cfg.Attributes {
		attrs = append(attrs, truncateAttribute(a, limits.AttributeValueLengthLimit))
	}
	for _, a := range result.Attributes {
		attrs = append(attrs, truncateAttribute(a, limits.AttributeValueLengthLimit))
	}
	if limits.AttributeCountLimit >= 0 && len(attrs) > limits.AttributeCountLimit {
		attrs = attrs[:limits.AttributeCountLimit]
	}

	links := newEvictedQueue[apitrace.Link](limits.LinkCountLimit)
	for _, l := range cfg.Links {
		links.add(l)
	}

	s := &recordingSpan{
		name:      name,
		sc:        sc,
		parent:    parent,
		kind:      cfg.SpanKind,
		startTime: startTime,
		attrs:     attrs,
		events:    newEvictedQueue[apitrace.Event](limits.EventCountLimit),
		links:     links,
		tracer:    t,
		recording: result.Decision == RecordOnly || result.Decision == RecordAndSample,
	}

	newCtx := apitrace.ContextWithSpan(ctx, s)
	t.provider.processors.onStart(newCtx, s)
	return newCtx, s
}
