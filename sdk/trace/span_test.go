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

package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/codes"
	"go.opentelemetry.io/otelcore/exporters/inmemory"
)

func TestSpanEndIsIdempotent(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	_, span := tp.Tracer("test").Start(context.Background(), "op")

	span.End()
	span.End()
	span.End()

	assert.Len(t, exp.GetSpans(), 1)
}

func TestSetStatusNeverDowngradesOk(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	_, span := tp.Tracer("test").Start(context.Background(), "op")

	span.SetStatus(codes.Ok, "")
	span.SetStatus(codes.Error, "boom")
	span.End()

	got := exp.GetSpans()[0].Status()
	assert.Equal(t, codes.Ok, got.Code)
}

func TestSetAttributesOverwritesInPlace(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	_, span := tp.Tracer("test").Start(context.Background(), "op")

	span.SetAttributes(attribute.String("k", "v1"))
	span.SetAttributes(attribute.String("k", "v2"))
	span.End()

	attrs := exp.GetSpans()[0].Attributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, "v2", attrs[0].Value.AsString())
}

func TestRecordErrorAddsExceptionEvent(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	_, span := tp.Tracer("test").Start(context.Background(), "op")

	span.RecordError(errors.New("kaboom"))
	span.End()

	events := exp.GetSpans()[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "exception", events[0].Name)
}

func TestAttributeValueLengthLimitTruncatesStrings(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	tp := NewTracerProvider(
		WithSpanProcessor(NewSimpleSpanProcessor(exp)),
		WithSpanLimits(SpanLimits{AttributeCountLimit: -1, AttributeValueLengthLimit: 3, AttributePerEventCountLimit: -1, EventCountLimit: -1, LinkCountLimit: -1}),
	)
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.SetAttributes(attribute.String("k", "abcdef"))
	span.End()

	attrs := exp.GetSpans()[0].Attributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, "abc", attrs[0].Value.AsString())
}

func TestChildSpanCountIncrementsOnParent(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	tracer := tp.Tracer("test")

	ctx, parent := tracer.Start(context.Background(), "parent")
	_, child := tracer.Start(ctx, "child")
	child.End()
	parent.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 2)
	for _, s := range spans {
		if s.Name() == "parent" {
			assert.Equal(t, 1, s.ChildSpanCount())
		}
	}
}

func TestDroppedSpanCarriesValidContextButRecordsNothing(t *testing.T) {
	tp := NewTracerProvider(WithSampler(NeverSample()))
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	assert.False(t, span.IsRecording())
	assert.True(t, span.SpanContext().IsValid())
}
