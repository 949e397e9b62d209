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

package log // import "go.opentelemetry.io/otelcore/sdk/log"

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
	defaultScheduledDelay     = time.Second
	defaultExportTimeout      = 30 * time.Second
	defaultMaxExportBatchSize = 512
)

// BatchProcessorOptions configures a BatchProcessor, mirroring the trace
// pipeline's batch span processor (spec.md C9, applied to logs).
type BatchProcessorOptions struct {
	MaxQueueSize       int
	BatchTimeout       time.Duration
	ExportTimeout      time.Duration
	MaxExportBatchSize int
	Limiter            *rate.Limiter
}

// BatchProcessorOption customizes a BatchProcessorOptions value.
type BatchProcessorOption func(*BatchProcessorOptions)

// WithExportRateLimit caps how often the background worker may call the
// exporter's Export, independent of batch size or timeout. Only the export
// call waits for a token; OnEmit never blocks the caller.
func WithExportRateLimit(r rate.Limit, burst int) BatchProcessorOption {
	return func(o *BatchProcessorOptions) { o.Limiter = rate.NewLimiter(r, burst) }
}

func WithMaxQueueSize(size int) BatchProcessorOption {
	return func(o *BatchProcessorOptions) { o.MaxQueueSize = size }
}

func WithBatchTimeout(delay time.Duration) BatchProcessorOption {
	return func(o *BatchProcessorOptions) { o.BatchTimeout = delay }
}

func WithExportTimeout(timeout time.Duration) BatchProcessorOption {
	return func(o *BatchProcessorOptions) { o.ExportTimeout = timeout }
}

func WithMaxExportBatchSize(size int) BatchProcessorOption {
	return func(o *BatchProcessorOptions) { o.MaxExportBatchSize = size }
}

// batchProcessor buffers emitted records in a bounded channel, draining
// them from a single background goroutine on a size/time trigger, dropping
// new records once the queue is full rather than blocking the caller.
type batchProcessor struct {
	exporter LogExporter
	o        BatchProcessorOptions

	queue   chan *ReadableLogRecord
	done    chan struct{}
	flushCh chan chan error
	stopped atomic.Bool
	dropped atomic.Uint64

	batch   []*ReadableLogRecord
	batchMu sync.Mutex
	wg      sync.WaitGroup
}

// NewBatchProcessor returns a LogProcessor that batches records before
// handing them to exporter.
func NewBatchProcessor(exporter LogExporter, opts ...BatchProcessorOption) LogProcessor {
	o := BatchProcessorOptions{
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

	bp := &batchProcessor{
		exporter: exporter,
		o:        o,
		queue:    make(chan *ReadableLogRecord, o.MaxQueueSize),
		done:     make(chan struct{}),
		flushCh:  make(chan chan error),
		batch:    make([]*ReadableLogRecord, 0, o.MaxExportBatchSize),
	}
	bp.wg.Add(1)
	go bp.run()
	return bp
}

func (bp *batchProcessor) OnEmit(_ context.Context, record *ReadableLogRecord) {
	if bp.stopped.Load() {
		return
	}
	select {
	case bp.queue <- record:
	default:
		bp.dropped.Add(1)
	}
}

func (bp *batchProcessor) run() {
	defer bp.wg.Done()
	timer := time.NewTimer(bp.o.BatchTimeout)
	defer timer.Stop()

	for {
		select {
		case <-bp.done:
			bp.drainQueue()
			bp.exportBatch()
			return
		case r := <-bp.queue:
			bp.batchMu.Lock()
			bp.batch = append(bp.batch, r)
			full := len(bp.batch) >= bp.o.MaxExportBatchSize
			bp.batchMu.Unlock()
			if full {
				bp.exportBatch()
			}
		case <-timer.C:
			bp.exportBatch()
			timer.Reset(bp.o.BatchTimeout)
		case reply := <-bp.flushCh:
			bp.drainQueue()
			reply <- bp.exportBatch()
		}
	}
}

func (bp *batchProcessor) drainQueue() {
	for {
		select {
		case r := <-bp.queue:
			bp.batchMu.Lock()
			bp.batch = append(bp.batch, r)
			bp.batchMu.Unlock()
		default:
			return
		}
	}
}

func (bp *batchProcessor) exportBatch() error {
	bp.batchMu.Lock()
	if len(bp.batch) == 0 {
		bp.batchMu.Unlock()
		return nil
	}
	batch := bp.batch
	bp.batch = make([]*ReadableLogRecord, 0, bp.o.MaxExportBatchSize)
	bp.batchMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), bp.o.ExportTimeout)
	defer cancel()
	if bp.o.Limiter != nil {
		if err := bp.o.Limiter.Wait(ctx); err != nil {
			global.Handle(err)
			return err
		}
	}
	err := bp.exporter.Export(ctx, batch)
	global.Handle(err)
	return err
}

func (bp *batchProcessor) ForceFlush(ctx context.Context) error {
	if bp.stopped.Load() {
		return nil
	}
	reply := make(chan error, 1)
	select {
	case bp.flushCh <- reply:
	case <-ctx.Done():
		return ctx.Err()
	case <-bp.done:
		return nil
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (bp *batchProcessor) Shutdown(ctx context.Context) error {
	if !bp.stopped.CompareAndSwap(false, true) {
		return nil
	}
	close(bp.done)
	doneWait := make(chan struct{})
	go func() {
		bp.wg.Wait()
		close(doneWait)
	}()
	select {
	case <-doneWait:
	case <-ctx.Done():
		return ctx.Err()
	}
	return bp.exporter.Shutdown(ctx)
}

// simpleProcessor exports each record synchronously as it is emitted.
type simpleProcessor struct {
	mu       sync.Mutex
	exporter LogExporter
	stopped  bool
}

// NewSimpleProcessor returns a LogProcessor that calls exporter once per
// record, inline on the caller's goroutine.
func NewSimpleProcessor(exporter LogExporter) LogProcessor {
	return &simpleProcessor{exporter: exporter}
}

func (sp *simpleProcessor) OnEmit(ctx context.Context, record *ReadableLogRecord) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.stopped {
		return
	}
	_ = sp.exporter.Export(ctx, []*ReadableLogRecord{record})
}

func (sp *simpleProcessor) Shutdown(ctx context.Context) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.stopped {
		return nil
	}
	sp.stopped = true
	return sp.exporter.Shutdown(ctx)
}

func (sp *simpleProcessor) ForceFlush(context.Context) error { return nil }
