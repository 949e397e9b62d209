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

	"golang.org/x/sync/errgroup"

	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/resource"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
)

// MeterProvider is the SDK's implementation of apimetric.MeterProvider. It
// owns one pipeline per registered Reader and the Meters built against them.
type MeterProvider struct {
	mu       sync.Mutex
	meters   map[instrumentation.Scope]*meter
	readers  []Reader
	pipes    []*pipeline
	resource *resource.Resource

	isShutdown bool
}

// MeterProviderOption configures a MeterProvider at construction time.
type MeterProviderOption func(*MeterProvider)

// WithResource attaches the Resource describing the entity producing metrics.
func WithResource(r *resource.Resource) MeterProviderOption {
	return func(p *MeterProvider) { p.resource = r }
}

// WithReader registers a Reader. Each Reader gets its own pipeline, so
// readers with different temporality or aggregation needs never share
// aggregator state for the same instrument.
func WithReader(r Reader) MeterProviderOption {
	return func(p *MeterProvider) { p.readers = append(p.readers, r) }
}

// NewMeterProvider constructs a MeterProvider, binding every WithReader
// option to its own pipeline over resource.Default() unless overridden.
func NewMeterProvider(opts ...MeterProviderOption) *MeterProvider {
	p := &MeterProvider{
		meters:   make(map[instrumentation.Scope]*meter),
		resource: resource.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, r := range p.readers {
		pipe := newPipeline(p.resource, r.temporality)
		r.register(pipe)
		p.pipes = append(p.pipes, pipe)
	}
	return p
}

// Meter returns the Meter for the named instrumentation scope, creating and
// caching it on first use.
func (p *MeterProvider) Meter(name string, opts ...apimetric.MeterOption) apimetric.Meter {
	cfg := apimetric.NewMeterConfig(opts...)
	scope := instrumentation.Scope{
		Name:      name,
		Version:   cfg.InstrumentationVersion,
		SchemaURL: cfg.SchemaURL,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.meters[scope]; ok {
		return m
	}
	m := newMeter(scope, p.pipes)
	p.meters[scope] = m
	return m
}

// Shutdown shuts down every registered Reader. Only the first call has
// effect; subsequent calls return nil immediately.
func (p *MeterProvider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.isShutdown {
		p.mu.Unlock()
		return nil
	}
	p.isShutdown = true
	readers := p.readers
	p.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range readers {
		r := r
		g.Go(func() error { return r.Shutdown(gctx) })
	}
	return g.Wait()
}

// ForceFlush flushes every registered Reader concurrently, under a shared
// deadline: readers draw from independent pipelines, so there is no reason
// to flush them one at a time.
func (p *MeterProvider) ForceFlush(ctx context.Context) error {
	p.mu.Lock()
	readers := p.readers
	p.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range readers {
		r := r
		g.Go(func() error { return r.ForceFlush(gctx) })
	}
	return g.Wait()
}
