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

package internal // import "go.opentelemetry.io/otelcore/sdk/metric/internal"

import (
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
)

// defaultShardCount splits attribute-set lookups across this many
// independently-locked shards, so concurrent measurements on different
// attribute sets don't serialize on a single mutex (spec.md §5's
// measurement hot path).
const defaultShardCount = 16

// DefaultCardinalityLimit bounds how many distinct attribute sets a single
// instrument will track before routing further ones into the overflow cell
// (spec.md C12's cardinality cap).
const DefaultCardinalityLimit = 2000

// overflowSet is the attribute.Set reported for measurements that arrive
// after an instrument's cardinality limit has been reached, following the
// "otel.metric.overflow" convention.
var overflowSet = attribute.NewSet(attribute.Bool("otel.metric.overflow", true))

type shard[N Number] struct {
	mu    sync.Mutex
	byKey map[attribute.Distinct]*entry[N]
}

type entry[N Number] struct {
	set Set
	agg Aggregator[N]
}

// Set is re-exported so valuemap.go's callers don't need a separate import
// alias; it is simply attribute.Set.
type Set = attribute.Set

// NewFunc builds a fresh Aggregator for a newly observed attribute set.
type NewFunc[N Number] func() Aggregator[N]

// ValueMap is a sharded, cardinality-capped store of one Aggregator per
// distinct attribute.Set observed by an instrument. Lookups hash the set to
// pick a shard, then use attribute.Set.Equivalent as the map key so
// distinct sets never collide even if their Hash does (spec.md C12).
type ValueMap[N Number] struct {
	shards   [defaultShardCount]shard[N]
	newAgg   NewFunc[N]
	limit    int
	size     atomic.Int64
	overflow struct {
		mu  sync.Mutex
		agg Aggregator[N]
	}
}

// NewValueMap returns a ValueMap that creates new aggregators with newAgg,
// capping total distinct attribute sets at limit (DefaultCardinalityLimit
// if limit <= 0).
func NewValueMap[N Number](newAgg NewFunc[N], limit int) *ValueMap[N] {
	if limit <= 0 {
		limit = DefaultCardinalityLimit
	}
	vm := &ValueMap[N]{newAgg: newAgg, limit: limit}
	for i := range vm.shards {
		vm.shards[i].byKey = make(map[attribute.Distinct]*entry[N])
	}
	vm.overflow.agg = newAgg()
	return vm
}

func (vm *ValueMap[N]) shardFor(set Set) *shard[N] {
	return &vm.shards[set.Hash()%defaultShardCount]
}

// Measure records value under attrs, creating a new aggregator on first
// observation of attrs, or routing to the shared overflow cell once the
// instrument's cardinality limit has been reached.
func (vm *ValueMap[N]) Measure(attrs Set, value N) {
	key := attrs.Equivalent()
	sh := vm.shardFor(attrs)

	sh.mu.Lock()
	e, ok := sh.byKey[key]
	if !ok {
		if vm.size.Load() >= int64(vm.limit) {
			sh.mu.Unlock()
			vm.overflow.mu.Lock()
			vm.overflow.agg.Aggregate(value)
			vm.overflow.mu.Unlock()
			return
		}
		e = &entry[N]{set: attrs, agg: vm.newAgg()}
		sh.byKey[key] = e
		vm.size.Add(1)
	}
	e.agg.Aggregate(value)
	sh.mu.Unlock()
}

// Len returns the total number of distinct attribute sets currently
// tracked, across all shards.
func (vm *ValueMap[N]) Len() int { return int(vm.size.Load()) }

// Collect snapshots every tracked attribute set's current aggregation,
// plus the overflow cell when its current aggregation has a non-zero Count
// or Value.
func (vm *ValueMap[N]) Collect() []Snapshot[N] {
	now := time.Now()
	var out []Snapshot[N]
	for i := range vm.shards {
		sh := &vm.shards[i]
		sh.mu.Lock()
		for _, e := range sh.byKey {
			out = append(out, Snapshot[N]{Attributes: e.set, Aggregation: e.agg.Collect(), Time: now})
		}
		sh.mu.Unlock()
	}

	vm.overflow.mu.Lock()
	agg := vm.overflow.agg.Collect()
	vm.overflow.mu.Unlock()
	if agg.Count > 0 || agg.Value != 0 {
		out = append(out, Snapshot[N]{Attributes: overflowSet, Aggregation: agg, Time: now})
	}
	return out
}
