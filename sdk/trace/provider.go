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

	"github.com/go-logr/logr"

	"go.opentelemetry.io/otelcore/resource"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
	"go.opentelemetry.io/otelcore/sdk/internal/global"
	apitrace "go.opentelemetry.io/otelcore/trace"
)

// TracerProvider is the SDK's implementation of apitrace.TracerProvider. It
// owns the Sampler, IDGenerator, SpanLimits, Resource, and SpanProcessor
// chain shared by every Tracer it produces (spec.md C7).
type TracerProvider struct {
	mu          sync.Mutex
	tracers     map[instrumentation.Scope]*tracer
	processors  processorChain
	sampler     Sampler
	idGenerator IDGenerator
	spanLimits  SpanLimits
	resource    *resource.Resource
	logger      logr.Logger

	isShutdown bool
}

// TracerProviderOption configures a TracerProvider at construction time.
type TracerProviderOption func(*TracerProvider)

// WithSampler sets the Sampler consulted for every new span. Defaults to
// ParentBased(AlwaysSample()).
func WithSampler(s Sampler) TracerProviderOption {
	return func(p *TracerProvider) { p.sampler = s }
}

// WithIDGenerator sets the generator used to mint new trace and span IDs.
func WithIDGenerator(g IDGenerator) TracerProviderOption {
	return func(p *TracerProvider) { p.idGenerator = g }
}

// WithSpanLimits overrides the default bounded-attribute/event/link limits.
func WithSpanLimits(limits SpanLimits) TracerProviderOption {
	return func(p *TracerProvider) { p.spanLimits = limits }
}

// WithResource attaches the Resource describing the entity producing spans.
func WithResource(r *resource.Resource) TracerProviderOption {
	return func(p *TracerProvider) { p.resource = r }
}

// WithSpanProcessor registers a SpanProcessor. Multiple processors are
// invoked in registration order on every span lifecycle event.
func WithSpanProcessor(sp SpanProcessor) TracerProviderOption {
	return func(p *TracerProvider) { p.processors.register(sp) }
}

// WithLogger overrides the logr.Logger used to report Shutdown/ForceFlush
// errors that have no caller left to return them to. Defaults to the
// package-wide global.Logger().
func WithLogger(l logr.Logger) TracerProviderOption {
	return func(p *TracerProvider) { p.logger = l }
}

// NewTracerProvider constructs a TracerProvider, applying opts over the
// package defaults: AlwaysSample root wrapped in ParentBased, a random
// IDGenerator, DefaultSpanLimits, and resource.Default().
func NewTracerProvider(opts ...TracerProviderOption) *TracerProvider {
	p := &TracerProvider{
		tracers:     make(map[instrumentation.Scope]*tracer),
		sampler:     ParentBased(AlwaysSample()),
		idGenerator: defaultIDGenerator(),
		spanLimits:  DefaultSpanLimits(),
		resource:    resource.Default(),
		logger:      global.Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tracer returns the Tracer for the named instrumentation scope, creating
// and caching it on first use (spec.md §4.5: "Tracer creation is idempotent
// per name/version/schemaURL").
func (p *TracerProvider) Tracer(name string, opts ...apitrace.TracerOption) apitrace.Tracer {
	cfg := apitrace.NewTracerConfig(opts...)
	scope := instrumentation.Scope{
		Name:      name,
		Version:   cfg.InstrumentationVersion,
		SchemaURL: cfg.SchemaURL,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.tracers[scope]; ok {
		return t
	}
	t := &tracer{provider: p, instrumentationScope: scope}
	p.tracers[scope] = t
	return t
}

// Shutdown shuts down every registered SpanProcessor. Only the first call
// has effect; subsequent calls return nil immediately.
func (p *TracerProvider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.isShutdown {
		p.mu.Unlock()
		return nil
	}
	p.isShutdown = true
	p.mu.Unlock()
	err := p.processors.shutdown(ctx)
	if err != nil {
		p.logger.Error(err, "span processor shutdown failed")
	}
	return err
}

// ForceFlush flushes every registered SpanProcessor.
func (p *TracerProvider) ForceFlush(ctx context.Context) error {
	err := p.processors.forceFlush(ctx)
	if err != nil {
		p.logger.Error(err, "span processor force flush failed")
	}
	return err
}
