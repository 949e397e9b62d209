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
	"sync"

	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/resource"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
)

// collectFunc produces one Metric for the instrument it was created from,
// or (zero Metric, false) if the instrument has no data yet.
type collectFunc func() (data.Metric, bool)

// pipeline is the set of instruments feeding a single Reader. A
// MeterProvider builds one pipeline per registered Reader, so the same
// measurement feeds every reader independently (spec.md C12's "one
// aggregation per reader" requirement, needed because two readers may
// request different temporalities for the same instrument).
type pipeline struct {
	mu              sync.Mutex
	resource        *resource.Resource
	scopes          map[instrumentation.Scope][]collectFunc
	temporalityFunc func(apimetric.InstrumentKind) data.Temporality
}

func newPipeline(res *resource.Resource, temporalityFunc func(apimetric.InstrumentKind) data.Temporality) *pipeline {
	return &pipeline{
		resource:        res,
		scopes:          make(map[instrumentation.Scope][]collectFunc),
		temporalityFunc: temporalityFunc,
	}
}

// temporalityFor reports the Temporality this pipeline's Reader wants for
// instruments of kind, defaulting to Cumulative if the reader expressed no
// preference.
func (p *pipeline) temporalityFor(kind apimetric.InstrumentKind) data.Temporality {
	if p.temporalityFunc == nil {
		return data.CumulativeTemporality
	}
	return p.temporalityFunc(kind)
}

func (p *pipeline) addInstrument(scope instrumentation.Scope, fn collectFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scopes[scope] = append(p.scopes[scope], fn)
}

func (p *pipeline) collect() *data.ResourceMetrics {
	p.mu.Lock()
	defer p.mu.Unlock()

	rm := &data.ResourceMetrics{Resource: p.resource}
	for scope, fns := range p.scopes {
		sm := data.ScopeMetrics{Scope: scope}
		for _, fn := range fns {
			if m, ok := fn(); ok {
				sm.Metrics = append(sm.Metrics, m)
			}
		}
		if len(sm.Metrics) > 0 {
			rm.ScopeMetrics = append(rm.ScopeMetrics, sm)
		}
	}
	return rm
}
