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

// evictedQueue is a fixed-capacity FIFO that counts, rather than errors on,
// items dropped once full (spec.md §4.5's event/link caps). A capacity of 0
// accepts nothing and drops everything.
type evictedQueue[T any] struct {
	queue   []T
	cap     int
	dropped int
}

func newEvictedQueue[T any](capacity int) evictedQueue[T] {
	prealloc := capacity
	if prealloc > 64 {
		prealloc = 64
	}
	return evictedQueue[T]{cap: capacity, queue: make([]T, 0, prealloc)}
}

func (eq *evictedQueue[T]) add(item T) {
	if eq.cap == 0 {
		eq.dropped++
		return
	}
	if len(eq.queue) < eq.cap {
		eq.queue = append(eq.queue, item)
		return
	}
	eq.dropped++
}
