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
	"time"

	apilog "go.opentelemetry.io/otelcore/log"
	"go.opentelemetry.io/otelcore/resource"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
	apitrace "go.opentelemetry.io/otelcore/trace"
	"go.uber.org/multierr"
)

// LoggerProvider is the SDK's implementation of apilog.LoggerProvider.
type LoggerProvider struct {
	mu         sync.Mutex
	loggers    map[instrumentation.Scope]*logger
	processors []LogProcessor
	resource   *resource.Resource
	isShutdown bool
}

// LoggerProviderOption configures a LoggerProvider at construction time.
type LoggerProviderOption func(*LoggerProvider)

// WithResource attaches the Resource describing the entity emitting logs.
func WithResource(r *resource.Resource) LoggerProviderOption {
	return func(p *LoggerProvider) { p.resource = r }
}

// WithLogProcessor registers a LogProcessor, invoked on every record in
// registration order.
func WithLogProcessor(proc LogProcessor) LoggerProviderOption {
	return func(p *LoggerProvider) { p.processors = append(p.processors, proc) }
}

// NewLoggerProvider constructs a LoggerProvider, applying opts over the
// package default resource.Default().
func NewLoggerProvider(opts ...LoggerProviderOption) *LoggerProvider {
	p := &LoggerProvider{
		loggers:  make(map[instrumentation.Scope]*logger),
		resource: resource.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Logger returns the Logger for the named instrumentation scope, creating
// and caching it on first use.
func (p *LoggerProvider) Logger(name string, opts ...apilog.LoggerOption) apilog.Logger {
	cfg := apilog.NewLoggerConfig(opts...)
	scope := instrumentation.Scope{
		Name:      name,
		Version:   cfg.InstrumentationVersion,
		SchemaURL: cfg.SchemaURL,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.loggers[scope]; ok {
		return l
	}
	l := &logger{provider: p, scope: scope}
	p.loggers[scope] = l
	return l
}

// Shutdown shuts down every registered LogProcessor. Only the first call
// has effect.
func (p *LoggerProvider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.isShutdown {
		p.mu.Unlock()
		return nil
	}
	p.isShutdown = true
	procs := p.processors
	p.mu.Unlock()

	var err error
	for _, proc := range procs {
		err = multierr.Append(err, proc.Shutdown(ctx))
	}
	return err
}

// ForceFlush flushes every registered LogProcessor.
func (p *LoggerProvider) ForceFlush(ctx context.Context) error {
	p.mu.Lock()
	procs := p.processors
	p.mu.Unlock()

	var err error
	for _, proc := range procs {
		err = multierr.Append(err, proc.ForceFlush(ctx))
	}
	return err
}

type logger struct {
	provider *LoggerProvider
	scope    instrumentation.Scope
}

var _ apilog.Logger = (*logger)(nil)

// Emit builds a ReadableLogRecord from record, attaching the trace context
// active in ctx (if any) and the owning provider's resource, then fans it
// out to every registered LogProcessor.
func (l *logger) Emit(ctx context.Context, record apilog.Record) {
	ts := record.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	observed := record.ObservedTimestamp
	if observed.IsZero() {
		observed = ts
	}

	sc := apitrace.SpanContextFromContext(ctx)
	r := &ReadableLogRecord{
		timestamp:         ts,
		observedTimestamp: observed,
		severity:          record.Severity,
		severityText:      record.SeverityText,
		body:              record.Body,
		attrs:             record.Attributes,
		traceID:           sc.TraceID(),
		spanID:            sc.SpanID(),
		flags:             sc.TraceFlags(),
		scope:             l.scope,
		resource:          l.provider.resource,
	}

	l.provider.mu.Lock()
	procs := l.provider.processors
	l.provider.mu.Unlock()
	for _, proc := range procs {
		proc.OnEmit(ctx, r)
	}
}
