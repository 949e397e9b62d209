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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"go.opentelemetry.io/otelcore/exporters/inmemory"
)

func TestBatchSpanProcessorExportsOnBatchSize(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	bsp := NewBatchSpanProcessor(exp, WithMaxQueueSize(10), WithMaxExportBatchSize(2), WithBatchTimeout(time.Hour))
	tp := NewTracerProvider(WithSpanProcessor(bsp))
	tracer := tp.Tracer("test")

	for i := 0; i < 2; i++ {
		_, span := tracer.Start(context.Background(), "op")
		span.End()
	}

	require.Eventually(t, func() bool { return len(exp.GetSpans()) == 2 }, time.Second, time.Millisecond)
}

func TestBatchSpanProcessorExportsOnTimeout(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	bsp := NewBatchSpanProcessor(exp, WithMaxQueueSize(10), WithMaxExportBatchSize(10), WithBatchTimeout(10*time.Millisecond))
	tp := NewTracerProvider(WithSpanProcessor(bsp))
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	require.Eventually(t, func() bool { return len(exp.GetSpans()) == 1 }, time.Second, time.Millisecond)
}

func TestBatchSpanProcessorDropsOnFullQueue(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	bsp := NewBatchSpanProcessor(exp, WithMaxQueueSize(1), WithMaxExportBatchSize(1), WithBatchTimeout(time.Hour)).(*batchSpanProcessor)
	tp := NewTracerProvider(WithSpanProcessor(bsp))
	tracer := tp.Tracer("test")

	for i := 0; i < 50; i++ {
		_, span := tracer.Start(context.Background(), "op")
		span.End()
	}

	assert.NoError(t, bsp.ForceFlush(context.Background()))
	assert.Greater(t, bsp.droppedSpans(), uint64(0))
}

func TestBatchSpanProcessorExportRateLimitAllowsFirstExport(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	bsp := NewBatchSpanProcessor(exp,
		WithMaxQueueSize(10), WithMaxExportBatchSize(1), WithBatchTimeout(time.Hour),
		WithExportRateLimit(rate.Every(50*time.Millisecond), 1),
	)
	tp := NewTracerProvider(WithSpanProcessor(bsp))
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	// The limiter's first token is available immediately, so the single
	// span still exports without waiting for the bucket to refill.
	require.Eventually(t, func() bool { return len(exp.GetSpans()) == 1 }, time.Second, time.Millisecond)
}

func TestBatchSpanProcessorShutdownFlushesAndIsIdempotent(t *testing.T) {
	exp := inmemory.NewSpanExporter()
	bsp := NewBatchSpanProcessor(exp, WithMaxQueueSize(10), WithMaxExportBatchSize(10), WithBatchTimeout(time.Hour))
	tp := NewTracerProvider(WithSpanProcessor(bsp))
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))
	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Len(t, exp.GetSpans(), 1)
}
