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

package internal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
)

func newSumVM(limit int) *ValueMap[int64] {
	return NewValueMap[int64](func() Aggregator[int64] { return NewSum[int64](false) }, limit)
}

func TestValueMapTracksDistinctAttributeSetsIndependently(t *testing.T) {
	vm := newSumVM(0)
	a := attribute.NewSet(attribute.String("k", "a"))
	b := attribute.NewSet(attribute.String("k", "b"))

	vm.Measure(a, 1)
	vm.Measure(a, 2)
	vm.Measure(b, 10)

	assert.Equal(t, 2, vm.Len())
	snaps := vm.Collect()
	require.Len(t, snaps, 2)

	got := map[string]int64{}
	for _, s := range snaps {
		v, _ := s.Attributes.Value("k")
		got[v.AsString()] = s.Value
	}
	assert.Equal(t, int64(3), got["a"])
	assert.Equal(t, int64(10), got["b"])
}

func TestValueMapRoutesOverflowPastCardinalityLimit(t *testing.T) {
	vm := newSumVM(1)
	a := attribute.NewSet(attribute.String("k", "a"))
	b := attribute.NewSet(attribute.String("k", "b"))
	c := attribute.NewSet(attribute.String("k", "c"))

	vm.Measure(a, 1)
	vm.Measure(b, 2)
	vm.Measure(c, 3)

	assert.Equal(t, 1, vm.Len())
	snaps := vm.Collect()

	var overflowCount int
	for _, s := range snaps {
		if _, ok := s.Attributes.Value("otel.metric.overflow"); ok {
			overflowCount++
			assert.Equal(t, int64(5), s.Value)
		}
	}
	assert.Equal(t, 1, overflowCount)
}

func TestValueMapConcurrentMeasureDoesNotDeadlock(t *testing.T) {
	vm := newSumVM(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			set := attribute.NewSet(attribute.Int("i", i%5))
			vm.Measure(set, 1)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, vm.Len(), 5)
}
