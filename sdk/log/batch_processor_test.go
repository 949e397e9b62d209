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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/exporters/inmemory"
	apilog "go.opentelemetry.io/otelcore/log"
)

func TestBatchProcessorExportsOnBatchSize(t *testing.T) {
	exp := inmemory.NewLogExporter()
	bp := NewBatchProcessor(exp, WithMaxQueueSize(10), WithMaxExportBatchSize(2), WithBatchTimeout(time.Hour))
	lp := NewLoggerProvider(WithLogProcessor(bp))
	logger := lp.Logger("test")

	for i := 0; i < 2; i++ {
		logger.Emit(context.Background(), apilog.Record{Body: attribute.StringValue("hi")})
	}

	require.Eventually(t, func() bool { return len(exp.GetRecords()) == 2 }, time.Second, time.Millisecond)
}

func TestBatchProcessorExportsOnTimeout(t *testing.T) {
	exp := inmemory.NewLogExporter()
	bp := NewBatchProcessor(exp, WithMaxQueueSize(10), WithMaxExportBatchSize(10), WithBatchTimeout(10*time.Millisecond))
	lp := NewLoggerProvider(WithLogProcessor(bp))
	lp.Logger("test").Emit(context.Background(), apilog.Record{})

	require.Eventually(t, func() bool { return len(exp.GetRecords()) == 1 }, time.Second, time.Millisecond)
}

func TestBatchProcessorDropsOnFullQueue(t *testing.T) {
	exp := inmemory.NewLogExporter()
	bp := NewBatchProcessor(exp, WithMaxQueueSize(1), WithMaxExportBatchSize(1), WithBatchTimeout(time.Hour)).(*batchProcessor)
	lp := NewLoggerProvider(WithLogProcessor(bp))
	logger := lp.Logger("test")

	for i := 0; i < 50; i++ {
		logger.Emit(context.Background(), apilog.Record{})
	}

	assert.NoError(t, bp.ForceFlush(context.Background()))
	assert.Greater(t, bp.dropped.Load(), uint64(0))
}

func TestBatchProcessorShutdownFlushesAndIsIdempotent(t *testing.T) {
	exp := inmemory.NewLogExporter()
	bp := NewBatchProcessor(exp, WithMaxQueueSize(10), WithMaxExportBatchSize(10), WithBatchTimeout(time.Hour))
	lp := NewLoggerProvider(WithLogProcessor(bp))
	lp.Logger("test").Emit(context.Background(), apilog.Record{})

	require.NoError(t, lp.Shutdown(context.Background()))
	require.NoError(t, lp.Shutdown(context.Background()))
	assert.Len(t, exp.GetRecords(), 1)
}

func TestSimpleProcessorExportsSynchronously(t *testing.T) {
	exp := inmemory.NewLogExporter()
	sp := NewSimpleProcessor(exp)
	lp := NewLoggerProvider(WithLogProcessor(sp))
	lp.Logger("test").Emit(context.Background(), apilog.Record{})

	assert.Len(t, exp.GetRecords(), 1)
}
