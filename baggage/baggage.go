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

// Package baggage provides the immutable, context-carried key/value store
// independent of span context (C2, C17). Only the in-memory Member/Baggage
// model is implemented here; the W3C Baggage wire codec is out of scope
// (spec.md §1's propagator-codec exclusion applies equally to baggage).
package baggage // import "go.opentelemetry.io/otelcore/baggage"

import (
	"errors"

	"go.opentelemetry.io/otelcore/attribute"
)

var (
	// ErrInvalidKey is returned when a Member is constructed with an empty key.
	ErrInvalidKey = errors.New("baggage: invalid key")
)

// Member is a single baggage entry: a key/value pair plus optional
// W3C-style properties (carried, never interpreted, by the core).
type Member struct {
	key        string
	value      string
	properties []Property
}

// Property is a bare or key=value property attached to a Member.
type Property struct {
	key, value string
	hasValue   bool
}

// NewKeyProperty returns a bare Property with no value.
func NewKeyProperty(key string) Property { return Property{key: key} }

// NewKeyValueProperty returns a Property with a value.
func NewKeyValueProperty(key, value string) Property {
	return Property{key: key, value: value, hasValue: true}
}

// Key returns the Property's key.
func (p Property) Key() string { return p.key }

// Value returns the Property's value and whether it has one.
func (p Property) Value() (string, bool) { return p.value, p.hasValue }

// NewMember returns a Member, failing if key is empty.
func NewMember(key, value string, props ...Property) (Member, error) {
	if key == "" {
		return Member{}, ErrInvalidKey
	}
	return Member{key: key, value: value, properties: append([]Property(nil), props...)}, nil
}

// Key returns the Member's key.
func (m Member) Key() string { return m.key }

// Value returns the Member's value.
func (m Member) Value() string { return m.value }

// Properties returns a copy of the Member's properties.
func (m Member) Properties() []Property { return append([]Property(nil), m.properties...) }

// Baggage is an immutable, ordered, de-duplicated (last-wins on Key) set of
// Members carried in a context.Context alongside, and independent of, the
// active span.
type Baggage struct {
	members []Member
}

// New returns a Baggage holding ms, with later duplicate keys overwriting
// earlier ones, matching the W3C Baggage last-member-wins rule.
func New(ms ...Member) Baggage {
	byKey := make(map[string]int, len(ms))
	var out []Member
	for _, m := range ms {
		if idx, ok := byKey[m.key]; ok {
			out[idx] = m
			continue
		}
		byKey[m.key] = len(out)
		out = append(out, m)
	}
	return Baggage{members: out}
}

// Member returns the Member for key, or the zero Member if absent.
func (b Baggage) Member(key string) Member {
	for _, m := range b.members {
		if m.key == key {
			return m
		}
	}
	return Member{}
}

// Members returns a copy of all Members in b.
func (b Baggage) Members() []Member { return append([]Member(nil), b.members...) }

// SetMember returns a new Baggage with m inserted or replacing any Member
// of the same key. b is not modified.
func (b Baggage) SetMember(m Member) Baggage {
	out := make([]Member, 0, len(b.members)+1)
	replaced := false
	for _, existing := range b.members {
		if existing.key == m.key {
			out = append(out, m)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, m)
	}
	return Baggage{members: out}
}

// DeleteMember returns a new Baggage with key removed, if present.
func (b Baggage) DeleteMember(key string) Baggage {
	out := make([]Member, 0, len(b.members))
	for _, existing := range b.members {
		if existing.key == key {
			continue
		}
		out = append(out, existing)
	}
	return Baggage{members: out}
}

// Len returns the number of Members in b.
func (b Baggage) Len() int { return len(b.members) }

// AsAttributes renders b as a Set of string-valued KeyValues, useful when a
// log record or span wants to copy baggage onto its own attributes.
func (b Baggage) AsAttributes() attribute.Set {
	kvs := make([]attribute.KeyValue, 0, len(b.members))
	for _, m := range b.members {
		kvs = append(kvs, attribute.String(m.key, m.value))
	}
	return attribute.NewSet(kvs...)
}
