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

package attribute // import "go.opentelemetry.io/otelcore/attribute"

import (
	"bytes"
	"encoding/binary"
	"hash/maphash"
	"sort"
)

// Set is an ordered, de-duplicated sequence of KeyValue, sorted by Key, with
// a first-wins rule applied to duplicate keys. A Set's zero value is the
// empty set.
type Set struct {
	kvs []KeyValue
}

// Distinct is a comparable, order-independent identity for a Set. Two Sets
// with the same canonical content always produce equal Distinct values, so
// Distinct is suitable as a Go map key. It trades a small upfront encoding
// cost for guaranteed correctness: unlike Hash, it can never collide.
type Distinct struct {
	key string
}

// Sortable implements sort.Interface. NewSetWithSortable stores the sorted
// copy it builds in a caller-supplied *Sortable; each call still allocates
// that copy.
type Sortable []KeyValue

func (s Sortable) Len() int           { return len(s) }
func (s Sortable) Less(i, j int) bool { return s[i].Key < s[j].Key }
func (s Sortable) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Filter is a predicate used to keep or drop a KeyValue from a Set.
type Filter func(KeyValue) bool

// NewSet returns a canonical Set built from kvs: sorted by key, first
// occurrence of a duplicate key wins.
func NewSet(kvs ...KeyValue) Set {
	s, _ := NewSetWithFiltered(kvs, nil)
	return s
}

// NewSetWithSortable is like NewSet but also stores the sorted copy of kvs
// (before de-duplication) in *tmp. Each call allocates a fresh copy and a
// de-duplication map; the previous backing array of *tmp is not reused.
func NewSetWithSortable(kvs []KeyValue, tmp *Sortable) Set {
	s, _ := newSet(kvs, tmp, nil)
	return s
}

// NewSetWithFiltered returns a canonical Set built from kvs, after removing
// any KeyValue for which filter returns false. The dropped KeyValues are
// returned in removed, in their original relative order. A nil filter keeps
// everything.
func NewSetWithFiltered(kvs []KeyValue, filter Filter) (Set, []KeyValue) {
	return newSet(kvs, nil, filter)
}

func newSet(kvs []KeyValue, tmp *Sortable, filter Filter) (Set, []KeyValue) {
	var removed []KeyValue
	if filter != nil {
		kept := kvs[:0:0]
		for _, kv := range kvs {
			if filter(kv) {
				kept = append(kept, kv)
			} else {
				removed = append(removed, kv)
			}
		}
		kvs = kept
	}

	cp := make([]KeyValue, len(kvs))
	copy(cp, kvs)

	var sortable Sortable
	if tmp != nil {
		*tmp = Sortable(cp)
		sortable = *tmp
	} else {
		sortable = Sortable(cp)
	}
	sort.Stable(sortable)
	cp = []KeyValue(sortable)

	// First-wins de-duplication: after a stable sort, equal keys retain
	// their original relative order, so keeping the first of each run
	// keeps the first occurrence in the input.
	out := cp[:0:0]
	seen := make(map[Key]struct{}, len(cp))
	for _, kv := range cp {
		if _, ok := seen[kv.Key]; ok {
			continue
		}
		seen[kv.Key] = struct{}{}
		out = append(out, kv)
	}
	return Set{kvs: out}, removed
}

// Len returns the number of distinct KeyValues in s.
func (s Set) Len() int { return len(s.kvs) }

// ToSlice returns the canonical KeyValue slice backing s. Callers must not
// mutate the result.
func (s Set) ToSlice() []KeyValue { return s.kvs }

// Value returns the Value associated with k and true, or the zero Value and
// false if k is not present.
func (s Set) Value(k Key) (Value, bool) {
	idx := sort.Search(len(s.kvs), func(i int) bool { return s.kvs[i].Key >= k })
	if idx < len(s.kvs) && s.kvs[idx].Key == k {
		return s.kvs[idx].Value, true
	}
	return Value{}, false
}

// HasValue reports whether k is present in s.
func (s Set) HasValue(k Key) bool {
	_, ok := s.Value(k)
	return ok
}

// Iter returns an iterator over the canonical KeyValues.
func (s Set) Iter() func(yield func(int, KeyValue) bool) {
	return func(yield func(int, KeyValue) bool) {
		for i, kv := range s.kvs {
			if !yield(i, kv) {
				return
			}
		}
	}
}

// Equivalent returns s's comparable identity, usable as a Go map key.
func (s Set) Equivalent() Distinct {
	var buf bytes.Buffer
	for _, kv := range s.kvs {
		buf.WriteString(string(kv.Key))
		buf.WriteByte(0)
		buf.WriteByte(byte(kv.Value.Type()))
		buf.WriteString(kv.Value.Emit())
		buf.WriteByte(0)
	}
	return Distinct{key: buf.String()}
}

var setHashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of s's canonical content, for use as a shard
// routing key (attribute.Set.Equivalent, not Hash, is the map-key identity —
// Hash may collide across distinct Sets).
func (s Set) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(setHashSeed)
	var scratch [8]byte
	for _, kv := range s.kvs {
		_, _ = h.WriteString(string(kv.Key))
		binary.LittleEndian.PutUint64(scratch[:], uint64(kv.Value.Type()))
		_, _ = h.Write(scratch[:])
		_, _ = h.WriteString(kv.Value.Emit())
	}
	return h.Sum64()
}

// Equals reports whether s and o hold the same canonical content.
func (s Set) Equals(o Set) bool { return s.Equivalent() == o.Equivalent() }
