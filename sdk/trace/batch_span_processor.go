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
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"go.opentelemetry.io/otelcore/sdk/internal/global"
)

const (
	defaultMaxQueueSize       = 2048
	defaultScheduledDelay     = 5 * time.Second
	defaultExportTimeout      = 30 * time.Second
	defaultMaxExportBatchSize = 512
)

// BatchSpanProcessorOptions configures a BatchSpanProcessor (spec.md C9).
type BatchSpanProcessorOptions struct {
	MaxQueueSize       int
	BatchTimeout       time.Duration
	ExportTimeout      time.Duration
	MaxExportBatchSize int
	BlockOnQueueFull   bool
	Limiter            *rate.Limiter
}

// BatchSpanProcessorOption customizes a BatchSpanProcessorOptions value.
type BatchSpanProcessorOption func(*BatchSpanProcessorOptions)

// WithMaxQueueSize sets the bounded queue's capacity.
func WithMaxQueueSize(size int) BatchSpanProcessorOption {
	return func(o *BatchSpanProcessorOptions) { o.MaxQueueSize = size }
}

// WithBatchTimeout sets the delay between two consecutive exports, measured
// from the end of one export to the start of the wait for the next.
func WithBatchTimeout(delay time.Duration) BatchSpanProcessorOption {
	return func(o *BatchSpanProcessorOptions) { o.BatchTimeout = delay }
}

// WithExportTimeout sets the deadline applied to each call to the
// exporter's ExportSpans.
func WithExportTimeout(timeout time.Duration) BatchSpanProcessorOption {
	return func(o *BatchSpanProcessorOptions) { o.ExportTimeout = timeout }
}

// WithMaxExportBatchSize sets the maximum number of spans exported in one
// ExportSpans call; the queue drains in chunks of at most this size.
func WithMaxExportBatchSize(size int) BatchSpanProcessorOption {
	return func(o *BatchSpanProcessorOptions) { o.MaxExportBatchSize = size }
}

// WithBlockOnQueueFull makes enqueue block until space is available instead
// of dropping the span. Intended for tests and offline batch jobs; using it
// in a latency-sensitive request path reintroduces the back-pressure the
// bounded queue exists to avoid.
func WithBlockOnQueueFull() BatchSpanProcessorOption {
	return func(o *BatchSpanProcessorOptions) { o.BlockOnQueueFull = true }
}

// WithExportRateLimit caps how often the background worker may call the
// exporter's ExportSpans, independent of batch size or timeout. Only the
// export call waits for a token; OnEnd never blocks the caller.
func WithExportRateLimit(r rate.Limit, burst int) BatchSpanProcessorOption {
	return func(o *BatchSpanProcessorOptions) { o.Limiter = rate.NewLimiter(r, burst) }
}

// batchSpanProcessor buffers ended spans in a bounded channel and drains
// them from a single background goroutine, exporting whenever the batch
// reaches MaxExportBatchSize or BatchTimeout elapses, whichever comes first
// (spec.md §4.6, back-pressure via drop-on-overflow).
type batchSpanProcessor struct {
	exporter SpanExporter
	o        BatchSpanProcessorOptions

	queue   chan ReadOnlySpan
	done    chan struct{}
	stopped atomic.Bool

	dropped atomic.Uint64

	batch     []ReadOnlySpan
	batchMu   sync.Mutex
	timer     *time.Timer
	flushCh   chan chan error
	wg        sync.WaitGroup
}

// NewBatchSpanProcessor returns a SpanProcessor that batches ended spans
// before handing them to exporter.
func NewBatchSpanProcessor(exporter SpanExporter, opts ...BatchSpanProcessorOption) SpanProcessor {
	o := BatchSpanProcessorOptions{
		MaxQueueSize:       defaultMaxQueueSize,
		BatchTimeout:       defaultScheduledDelay,
		ExportTimeout:      defaultExportTimeout,
		MaxExportBatchSize: defaultMaxExportBatchSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxExportBatchSize > o.MaxQueueSize {
		o.MaxExportBatchSize = o.MaxQueueSize
	}

	bsp := &batchSpanProcessor{
		exporter: exporter,
		o:        o,
		queue:    make(chan ReadOnlySpan, o.MaxQueueSize),
		done:     make(chan struct{}),
		flushCh:  make(chan chan error),
		batch:    make([]ReadOnlySpan, 0, o.MaxExportBatchSize),
	}
	bsp.wg.Add(1)
	go bsp.run()
	return bsp
}

func (bsp *batchSpanProcessor) OnStart(context.Context, ReadWriteSpan) {}

func (bsp *batchSpanProcessor) OnEnd(s ReadOnlySpan) {
	if bsp.stopped.Load() {
		return
	}
	if bsp.o.BlockOnQueueFull {
		select {
		case bsp.queue <- s:
		case <-bsp.done:
		}
		return
	}
	select {
	case bsp.queue <- s:
	default:
		bsp.dropped.Add(1)
	}
}

func (bsp *batchSpanProcessor) run() {
	defer bsp.wg.Done()
	timer := time.NewTimer(bsp.o.BatchTimeout)
	defer timer.Stop()

	for {
		select {
		case <-bsp.done:
			bsp.drainQueue()
			bsp.exportBatch()
			return
		case s := <-bsp.queue:
			bsp.batchMu.Lock()
			bsp.batch = append(bsp.batch, s)
			full := len(bsp.batch) >= bsp.o.MaxExportBatchSize
			bsp.batchMu.Unlock()
			if full {
				bsp.exportBatch()
				resetTimer(timer, bsp.o.BatchTimeout)
			}
		case <-timer.C:
			bsp.exportBatch()
			timer.Reset(bsp.o.BatchTimeout)
		case reply := <-bsp.flushCh:
			bsp.drainQueue()
			reply <- bsp.exportBatch()
		}
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

func (bsp *batchSpanProcessor) drainQueue() {
	for {
		select {
		case s := <-bsp.queue:
			bsp.batchMu.Lock()
			bsp.batch = append(bsp.batch, s)
			bsp.batchMu.Unlock()
		default:
			return
		}
	}
}

func (bsp *batchSpanProcessor) exportBatch() error {
	bsp.batchMu.Lock()
	if len(bsp.batch) == 0 {
		bsp.batchMu.Unlock()
		return nil
	}
	batch := bsp.batch
	bsp.batch = make([]ReadOnlySpan, 0, bsp.o.MaxExportBatchSize)
	bsp.batchMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), bsp.o.ExportTimeout)
	defer cancel()
	if bsp.o.Limiter != nil {
		if err := bsp.o.Limiter.Wait(ctx); err != nil {
			global.Handle(err)
			return err
		}
	}
	err := bsp.exporter.ExportSpans(ctx, batch)
	global.Handle(err)
	return err
}

// ForceFlush exports every span buffered so far, blocking until the export
// completes or ctx is done.
func (bsp *batchSpanProcessor) ForceFlush(ctx context.Context) error {
	if bsp.stopped.Load() {
		return nil
	}
	reply := make(chan error, 1)
	select {
	case bsp.flushCh <- reply:
	case <-ctx.Done():
		return ctx.Err()
	case <-bsp.done:
		return nil
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the background worker after flushing any buffered spans,
// then shuts down the underlying exporter. Only the first call has effect.
func (bsp *batchSpanProcessor) Shutdown(ctx context.Context) error {
	if !bsp.stopped.CompareAndSwap(false, true) {
		return nil
	}
	close(bsp.done)
	doneWait := make(chan struct{})
	go func() {
		bsp.wg.Wait()
		close(doneWait)
	}()
	select {
	case <-doneWait:
	case <-ctx.Done():
		return ctx.Err()
	}
	return bsp.exporter.Shutdown(ctx)
}

// droppedSpans reports how many spans were discarded because the queue was
// full, for self-observability counters (SPEC_FULL.md C18).
func (bsp *batchSpanProcessor) droppedSpans() uint64 { return bsp.dropped.Load() }
