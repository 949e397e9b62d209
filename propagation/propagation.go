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

// Package propagation provides the carrier and propagator contracts used to
// move SpanContext and Baggage across a process boundary. It deliberately
// stops at the contract: wire-format encode/decode is left to the concrete
// propagator below and to exporters, matching spec.md's scoping of codec
// concerns out of the core SDK.
package propagation // import "go.opentelemetry.io/otelcore/propagation"

import "context"

// TextMapCarrier is the storage medium used by a TextMapPropagator. Keys
// are case-insensitive per the W3C Trace Context spec; implementations
// should normalize on Get/Set.
type TextMapCarrier interface {
	Get(key string) string
	Set(key string, value string)
	Keys() []string
}

// MapCarrier is a TextMapCarrier backed by a plain map, handy for tests and
// simple in-process propagation.
type MapCarrier map[string]string

func (c MapCarrier) Get(key string) string { return c[key] }

func (c MapCarrier) Set(key string, value string) { c[key] = value }

func (c MapCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// TextMapPropagator injects and extracts cross-cutting concerns (trace
// context, baggage) as string key-value pairs.
type TextMapPropagator interface {
	Inject(ctx context.Context, carrier TextMapCarrier)
	Extract(ctx context.Context, carrier TextMapCarrier) context.Context
	Fields() []string
}

// composite runs a fixed list of TextMapPropagators in order, merging
// their Fields and serializing Inject/Extract through each in turn.
type composite struct {
	propagators []TextMapPropagator
}

// NewCompositeTextMapPropagator combines propagators into one that injects
// and extracts through all of them, in the order given.
func NewCompositeTextMapPropagator(propagators ...TextMapPropagator) TextMapPropagator {
	return &composite{propagators: propagators}
}

func (c *composite) Inject(ctx context.Context, carrier TextMapCarrier) {
	for _, p := range c.propagators {
		p.Inject(ctx, carrier)
	}
}

func (c *composite) Extract(ctx context.Context, carrier TextMapCarrier) context.Context {
	for _, p := range c.propagators {
		ctx = p.Extract(ctx, carrier)
	}
	return ctx
}

func (c *composite) Fields() []string {
	seen := make(map[string]struct{})
	var fields []string
	for _, p := range c.propagators {
		for _, f := range p.Fields() {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			fields = append(fields, f)
		}
	}
	return fields
}
