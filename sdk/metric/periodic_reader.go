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

package metric // import "go.opentelemetry.io/otelcore/sdk/metric"

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/internal/global"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
)

const (
	defaultPeriodicInterval = 60 * time.Second
	defaultPeriodicTimeout  = 30 * time.Second
)

// PeriodicReaderOptions configures a PeriodicReader.
type PeriodicReaderOptions struct {
	Interval time.Duration
	Timeout  time.Duration
	Limiter  *rate.Limiter
}

// PeriodicReaderOption customizes a PeriodicReaderOptions value.
type PeriodicReaderOption func(*PeriodicReaderOptions)

// WithInterval sets the delay between two consecutive collect-and-export
// cycles.
func WithInterval(d time.Duration) PeriodicReaderOption {
	return func(o *PeriodicReaderOptions) { o.Interval = d }
}

// WithTimeout sets the deadline applied to each collect-and-export cycle.
func WithTimeout(d time.Duration) PeriodicReaderOption {
	return func(o *PeriodicReaderOptions) { o.Timeout = d }
}

// WithExportRateLimit caps how often the background worker is allowed to
// call the exporter, independent of the collection interval: a burst of
// flush requests still collects on demand, but the export call itself waits
// for a token. Collection and attribute-set enqueue are never throttled,
// only the call into the (possibly slow) exporter.
func WithExportRateLimit(r rate.Limit, burst int) PeriodicReaderOption {
	return func(o *PeriodicReaderOptions) { o.Limiter = rate.NewLimiter(r, burst) }
}

// PeriodicReader collects and exports metrics on a fixed interval from a
// single background goroutine (spec.md C14's periodic collection
// requirement, mirroring the trace SDK's batch processor run loop).
type PeriodicReader struct {
	exporter Exporter
	o        PeriodicReaderOptions

	mu   sync.Mutex
	pipe *pipeline

	done    chan struct{}
	flushCh chan chan error
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewPeriodicReader returns a Reader that collects from its pipeline every
// Interval and hands the result to exporter.
func NewPeriodicReader(exporter Exporter, opts ...PeriodicReaderOption) *PeriodicReader {
	o := PeriodicReaderOptions{Interval: defaultPeriodicInterval, Timeout: defaultPeriodicTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	r := &PeriodicReader{
		exporter: exporter,
		o:        o,
		done:     make(chan struct{}),
		flushCh:  make(chan chan error),
	}
	return r
}

var _ Reader = (*PeriodicReader)(nil)

func (r *PeriodicReader) temporality(kind apimetric.InstrumentKind) data.Temporality {
	return r.exporter.Temporality(kind)
}

func (r *PeriodicReader) register(p *pipeline) {
	r.mu.Lock()
	r.pipe = p
	r.mu.Unlock()
	r.wg.Add(1)
	go r.run()
}

func (r *PeriodicReader) run() {
	defer r.wg.Done()
	ticker := time.NewTicker(r.o.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			_ = r.collectAndExport(context.Background())
			return
		case <-ticker.C:
			_ = r.collectAndExport(context.Background())
		case reply := <-r.flushCh:
			reply <- r.collectAndExport(context.Background())
		}
	}
}

func (r *PeriodicReader) collectAndExport(parent context.Context) error {
	ctx, cancel := context.WithTimeout(parent, r.o.Timeout)
	defer cancel()

	r.mu.Lock()
	pipe := r.pipe
	r.mu.Unlock()
	if pipe == nil {
		return nil
	}
	rm := pipe.collect()
	if len(rm.ScopeMetrics) == 0 {
		return nil
	}
	if r.o.Limiter != nil {
		if err := r.o.Limiter.Wait(ctx); err != nil {
			return err
		}
	}
	err := r.exporter.Export(ctx, rm)
	global.Handle(err)
	return err
}

// Collect runs one collection cycle and returns it directly, without
// exporting. Useful for tests and pull-based integrations.
func (r *PeriodicReader) Collect(ctx context.Context) (*data.ResourceMetrics, error) {
	r.mu.Lock()
	pipe := r.pipe
	r.mu.Unlock()
	if pipe == nil {
		return nil, nil
	}
	return pipe.collect(), nil
}

// ForceFlush runs one collect-and-export cycle immediately, blocking until
// it completes or ctx is done.
func (r *PeriodicReader) ForceFlush(ctx context.Context) error {
	if r.stopped.Load() {
		return nil
	}
	reply := make(chan error, 1)
	select {
	case r.flushCh <- reply:
	case <-ctx.Done():
		return ctx.Err()
	case <-r.done:
		return nil
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the background worker after one final collect-and-export
// pass, then shuts down the underlying exporter. Only the first call has
// effect.
func (r *PeriodicReader) Shutdown(ctx context.Context) error {
	if !r.stopped.CompareAndSwap(false, true) {
		return nil
	}
	close(r.done)
	doneWait := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(doneWait)
	}()
	select {
	case <-doneWait:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.exporter.Shutdown(ctx)
}
