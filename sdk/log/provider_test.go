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

package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/exporters/inmemory"
	apilog "go.opentelemetry.io/otelcore/log"
	apitrace "go.opentelemetry.io/otelcore/trace"
)

func TestEmitCorrelatesActiveSpanContext(t *testing.T) {
	exp := inmemory.NewLogExporter()
	lp := NewLoggerProvider(WithLogProcessor(NewSimpleProcessor(exp)))

	sc := apitrace.NewSpanContext(apitrace.SpanContextConfig{
		TraceID:    apitrace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:     apitrace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: apitrace.FlagsSampled,
	})
	ctx := apitrace.ContextWithSpanContext(context.Background(), sc)

	lp.Logger("test").Emit(ctx, apilog.Record{})

	records := exp.GetRecords()
	require.Len(t, records, 1)
	assert.Equal(t, sc.TraceID(), records[0].TraceID())
	assert.Equal(t, sc.SpanID(), records[0].SpanID())
	assert.True(t, records[0].TraceFlags().IsSampled())
}

func TestEmitWithoutActiveSpanLeavesTraceContextZero(t *testing.T) {
	exp := inmemory.NewLogExporter()
	lp := NewLoggerProvider(WithLogProcessor(NewSimpleProcessor(exp)))

	lp.Logger("test").Emit(context.Background(), apilog.Record{})

	records := exp.GetRecords()
	require.Len(t, records, 1)
	assert.False(t, records[0].TraceID().IsValid())
}

func TestLoggerIsCachedPerScope(t *testing.T) {
	lp := NewLoggerProvider()
	a := lp.Logger("svc")
	b := lp.Logger("svc")
	assert.Same(t, a, b)
}

func TestLoggerProviderShutdownIsIdempotent(t *testing.T) {
	exp := inmemory.NewLogExporter()
	lp := NewLoggerProvider(WithLogProcessor(NewSimpleProcessor(exp)))

	require.NoError(t, lp.Shutdown(context.Background()))
	require.NoError(t, lp.Shutdown(context.Background()))
}
