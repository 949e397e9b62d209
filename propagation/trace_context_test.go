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

package propagation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/trace"
)

func TestTraceContextInjectExtractRoundTrip(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	carrier := MapCarrier{}
	tc := TraceContext{}
	tc.Inject(ctx, carrier)
	require.NotEmpty(t, carrier.Get("traceparent"))

	got := tc.Extract(context.Background(), carrier)
	extracted := trace.SpanContextFromContext(got)
	assert.Equal(t, sc.TraceID(), extracted.TraceID())
	assert.Equal(t, sc.SpanID(), extracted.SpanID())
	assert.True(t, extracted.IsSampled())
	assert.True(t, extracted.IsRemote())
}

func TestTraceContextExtractIgnoresMalformedHeader(t *testing.T) {
	carrier := MapCarrier{"traceparent": "not-a-traceparent"}
	got := TraceContext{}.Extract(context.Background(), carrier)
	assert.False(t, trace.SpanContextFromContext(got).IsValid())
}

func TestTraceContextFields(t *testing.T) {
	assert.Equal(t, []string{"traceparent", "tracestate"}, TraceContext{}.Fields())
}

func TestCompositeTextMapPropagatorFansOut(t *testing.T) {
	composite := NewCompositeTextMapPropagator(TraceContext{})
	assert.Equal(t, []string{"traceparent", "tracestate"}, composite.Fields())
}
