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

	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
)

// ManualReader collects only when Collect is called explicitly: no
// background goroutine, no schedule. Intended for tests and for exporters
// that pull on their own (e.g. a Prometheus scrape handler).
type ManualReader struct {
	mu         sync.Mutex
	pipe       *pipeline
	isShutdown bool
	selector   TemporalitySelector
}

// ManualReaderOption configures a ManualReader.
type ManualReaderOption func(*ManualReader)

// WithTemporalitySelector overrides the Temporality a ManualReader requests
// per instrument kind. Defaults to DefaultTemporalitySelector.
func WithTemporalitySelector(selector TemporalitySelector) ManualReaderOption {
	return func(r *ManualReader) { r.selector = selector }
}

// NewManualReader returns a Reader with no export side effects of its own;
// callers drive collection by calling Collect.
func NewManualReader(opts ...ManualReaderOption) *ManualReader {
	r := &ManualReader{selector: DefaultTemporalitySelector}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ Reader = (*ManualReader)(nil)

func (r *ManualReader) temporality(kind apimetric.InstrumentKind) data.Temporality {
	return r.selector(kind)
}

func (r *ManualReader) register(p *pipeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipe = p
}

// Collect runs one collection pass over the registered pipeline. After
// Shutdown it returns an empty ResourceMetrics and a nil error.
func (r *ManualReader) Collect(ctx context.Context) (*data.ResourceMetrics, error) {
	r.mu.Lock()
	pipe := r.pipe
	shutdown := r.isShutdown
	r.mu.Unlock()
	if pipe == nil || shutdown {
		return &data.ResourceMetrics{}, nil
	}
	return pipe.collect(), nil
}

// ForceFlush is a no-op: ManualReader has nothing buffered between Collect
// calls.
func (r *ManualReader) ForceFlush(ctx context.Context) error { return nil }

// Shutdown marks the reader unusable. Only the first call has effect.
func (r *ManualReader) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.isShutdown = true
	return nil
}
