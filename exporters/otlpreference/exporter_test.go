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

package otlpreference

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/exporters/inmemory"
	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
)

// flakyMetricExporter fails the first N calls to Export, then delegates.
type flakyMetricExporter struct {
	remaining int
	inner     *inmemory.MetricExporter
}

func (f *flakyMetricExporter) Export(ctx context.Context, rm *data.ResourceMetrics) error {
	if f.remaining > 0 {
		f.remaining--
		return errors.New("transient transport error")
	}
	return f.inner.Export(ctx, rm)
}

func (f *flakyMetricExporter) ForceFlush(ctx context.Context) error { return f.inner.ForceFlush(ctx) }
func (f *flakyMetricExporter) Shutdown(ctx context.Context) error   { return f.inner.Shutdown(ctx) }

func (f *flakyMetricExporter) Temporality(kind apimetric.InstrumentKind) data.Temporality {
	return f.inner.Temporality(kind)
}

func TestMetricExporterRetriesUntilSuccess(t *testing.T) {
	inner := inmemory.NewMetricExporter()
	flaky := &flakyMetricExporter{remaining: 2, inner: inner}
	e := NewMetricExporter(flaky)

	rm := &data.ResourceMetrics{ScopeMetrics: []data.ScopeMetrics{{}}}
	require.NoError(t, e.Export(context.Background(), rm))

	got := inner.GetSnapshots()
	require.Len(t, got, 1)
	assert.Empty(t, cmp.Diff(rm, got[0]))
}

func TestMetricExporterGivesUpWhenContextIsDone(t *testing.T) {
	inner := inmemory.NewMetricExporter()
	flaky := &flakyMetricExporter{remaining: 1000, inner: inner}
	e := NewMetricExporter(flaky)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Export(ctx, &data.ResourceMetrics{})
	assert.Error(t, err)
}
