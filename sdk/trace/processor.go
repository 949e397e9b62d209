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

	"go.uber.org/multierr"
)

// SpanProcessor hooks into a span's lifecycle (spec.md C8/C9). Every
// TracerProvider holds an ordered chain of processors and fans OnStart/OnEnd
// out to each in registration order.
type SpanProcessor interface {
	// OnStart is called when a span starts, before the application
	// observes it. s may be mutated (e.g. to inject baggage as attributes).
	OnStart(parent context.Context, s ReadWriteSpan)

	// OnEnd is called once, after a recording span's End is called. The
	// processor must not retain s beyond the call unless it makes a copy.
	OnEnd(s ReadOnlySpan)

	// Shutdown flushes and releases all processor resources. Only the
	// first call has effect.
	Shutdown(ctx context.Context) error

	// ForceFlush exports all spans queued so far, blocking until done or
	// ctx is done.
	ForceFlush(ctx context.Context) error
}

// processorChain fans the TracerProvider's lifecycle calls out to every
// registered SpanProcessor in order, matching the OTel spec's "processors
// are invoked in the order they were registered" rule.
type processorChain struct {
	mu         sync.RWMutex
	processors []SpanProcessor
}

func (c *processorChain) register(p SpanProcessor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processors = append(c.processors, p)
}

func (c *processorChain) onStart(ctx context.Context, s ReadWriteSpan) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.processors {
		p.OnStart(ctx, s)
	}
}

func (c *processorChain) onEnd(s ReadOnlySpan) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.processors {
		p.OnEnd(s)
	}
}

func (c *processorChain) shutdown(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var err error
	for _, p := range c.processors {
		err = multierr.Append(err, p.Shutdown(ctx))
	}
	return err
}

func (c *processorChain) forceFlush(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var err error
	for _, p := range c.processors {
		err = multierr.Append(err, p.ForceFlush(ctx))
	}
	return err
}

// simpleSpanProcessor exports each span synchronously as it ends, with no
// batching. Useful for tests and low-volume exporters (spec.md §4.6).
type simpleSpanProcessor struct {
	mu       sync.Mutex
	exporter SpanExporter
	stopped  bool
}

// NewSimpleSpanProcessor returns a SpanProcessor that calls exporter once
// per ended span, inline on the caller's goroutine.
func NewSimpleSpanProcessor(exporter SpanExporter) SpanProcessor {
	return &simpleSpanProcessor{exporter: exporter}
}

func (ssp *simpleSpanProcessor) OnStart(context.Context, ReadWriteSpan) {}

func (ssp *simpleSpanProcessor) OnEnd(s ReadOnlySpan) {
	ssp.mu.Lock()
	defer ssp.mu.Unlock()
	if ssp.stopped {
		return
	}
	_ = ssp.exporter.ExportSpans(context.Background(), []ReadOnlySpan{s})
}

func (ssp *simpleSpanProcessor) Shutdown(ctx context.Context) error {
	ssp.mu.Lock()
	defer ssp.mu.Unlock()
	if ssp.stopped {
		return nil
	}
	ssp.stopped = true
	return ssp.exporter.Shutdown(ctx)
}

func (ssp *simpleSpanProcessor) ForceFlush(context.Context) error { return nil }
