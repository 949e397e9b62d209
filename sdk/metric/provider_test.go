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

package metric

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apimetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/exporters/inmemory"
	"go.opentelemetry.io/otelcore/sdk/metric/data"
)

func sumValue(t *testing.T, rm *data.ResourceMetrics, name string) int64 {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			s, ok := m.Data.(data.Sum[int64])
			require.True(t, ok)
			require.Len(t, s.DataPoints, 1)
			return s.DataPoints[0].Value
		}
	}
	t.Fatalf("metric %q not found", name)
	return 0
}

func TestSyncCounterCollectsThroughManualReader(t *testing.T) {
	reader := NewManualReader()
	mp := NewMeterProvider(WithReader(reader))
	counter, err := mp.Meter("test").Int64Counter("requests")
	require.NoError(t, err)

	counter.Add(context.Background(), 1)
	counter.Add(context.Background(), 2)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), sumValue(t, rm, "requests"))
}

func TestObservableCounterCollectsViaRegisteredCallback(t *testing.T) {
	reader := NewManualReader()
	mp := NewMeterProvider(WithReader(reader))
	m := mp.Meter("test")

	obsCounter, err := m.Int64ObservableCounter("queue_depth")
	require.NoError(t, err)
	_, err = m.RegisterCallback(func(_ context.Context, o apimetric.Observer) error {
		o.ObserveInt64(obsCounter, 42)
		return nil
	}, obsCounter)
	require.NoError(t, err)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), sumValue(t, rm, "queue_depth"))
}

func TestTwoReadersAggregateIndependently(t *testing.T) {
	r1 := NewManualReader()
	r2 := NewManualReader()
	mp := NewMeterProvider(WithReader(r1), WithReader(r2))
	counter, err := mp.Meter("test").Int64Counter("hits")
	require.NoError(t, err)

	counter.Add(context.Background(), 1)
	rm1, err := r1.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), sumValue(t, rm1, "hits"))

	counter.Add(context.Background(), 5)
	rm2, err := r2.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), sumValue(t, rm2, "hits"))
}

func TestMeterIsCachedPerScope(t *testing.T) {
	mp := NewMeterProvider(WithReader(NewManualReader()))
	a := mp.Meter("svc")
	b := mp.Meter("svc")
	assert.Same(t, a, b)
}

func TestMeterProviderShutdownIsIdempotentAndConcurrent(t *testing.T) {
	r1 := NewManualReader()
	r2 := NewManualReader()
	mp := NewMeterProvider(WithReader(r1), WithReader(r2))

	require.NoError(t, mp.Shutdown(context.Background()))
	require.NoError(t, mp.Shutdown(context.Background()))
}

func TestDeltaTemporalitySelectorResetsSumBetweenCollects(t *testing.T) {
	reader := NewManualReader(WithTemporalitySelector(DeltaTemporalitySelector))
	mp := NewMeterProvider(WithReader(reader))
	counter, err := mp.Meter("test").Int64Counter("requests")
	require.NoError(t, err)

	counter.Add(context.Background(), 5)
	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), sumValue(t, rm, "requests"))

	counter.Add(context.Background(), 3)
	rm, err = reader.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), sumValue(t, rm, "requests"))
}

func TestMonotonicCounterDropsNegativeIncrement(t *testing.T) {
	reader := NewManualReader()
	mp := NewMeterProvider(WithReader(reader))
	counter, err := mp.Meter("test").Int64Counter("requests")
	require.NoError(t, err)

	counter.Add(context.Background(), 5)
	counter.Add(context.Background(), -100)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), sumValue(t, rm, "requests"))
}

func TestPeriodicReaderExportsOnInterval(t *testing.T) {
	exp := inmemory.NewMetricExporter()
	reader := NewPeriodicReader(exp, WithInterval(10*time.Millisecond))
	mp := NewMeterProvider(WithReader(reader))
	counter, err := mp.Meter("test").Int64Counter("ticks")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	require.Eventually(t, func() bool { return len(exp.GetSnapshots()) > 0 }, time.Second, time.Millisecond)
	require.NoError(t, mp.Shutdown(context.Background()))
}
