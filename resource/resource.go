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

// Package resource implements the identifying attribute set attached to
// every span, log record, and metric point emitted by a provider (C3).
package resource // import "go.opentelemetry.io/otelcore/resource"

import (
	"errors"

	"go.uber.org/multierr"

	"go.opentelemetry.io/otelcore/attribute"
)

// Resource is an immutable, de-duplicated set of attributes identifying the
// entity producing telemetry, plus an optional schema URL. Once built, a
// Resource is shared by reference by every provider that holds it; it is
// never copied per spec.md §3.
type Resource struct {
	attrs     attribute.Set
	schemaURL string
}

// ErrSchemaURLConflict is returned by Merge when both resources declare a
// non-empty, differing schema URL.
var ErrSchemaURLConflict = errors.New("resource: conflicting schema URLs")

// Empty returns a Resource with no attributes and no schema URL.
func Empty() *Resource { return &Resource{} }

// New builds a Resource from kvs, which need not be pre-sorted.
func New(schemaURL string, kvs ...attribute.KeyValue) *Resource {
	return &Resource{attrs: attribute.NewSet(kvs...), schemaURL: schemaURL}
}

// Attributes returns the canonical KeyValue slice backing r.
func (r *Resource) Attributes() []attribute.KeyValue {
	if r == nil {
		return nil
	}
	return r.attrs.ToSlice()
}

// Set returns the attribute.Set backing r.
func (r *Resource) Set() attribute.Set {
	if r == nil {
		return attribute.Set{}
	}
	return r.attrs
}

// SchemaURL returns r's schema URL.
func (r *Resource) SchemaURL() string {
	if r == nil {
		return ""
	}
	return r.schemaURL
}

// Merge combines a and b, with b's attributes overriding a's on key
// collision, matching OTel's resource-merge precedence (the later resource,
// typically the more specific one, wins). Conflicting non-empty schema URLs
// are reported via multierr so a caller can surface every detected problem
// from a chain of merges at once, rather than only the first.
func Merge(a, b *Resource) (*Resource, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}

	var errs error
	schemaURL := a.schemaURL
	if b.schemaURL != "" {
		if a.schemaURL != "" && a.schemaURL != b.schemaURL {
			errs = multierr.Append(errs, ErrSchemaURLConflict)
		}
		schemaURL = b.schemaURL
	}

	merged := make(map[attribute.Key]attribute.Value, a.attrs.Len()+b.attrs.Len())
	for _, kv := range a.attrs.ToSlice() {
		merged[kv.Key] = kv.Value
	}
	for _, kv := range b.attrs.ToSlice() {
		merged[kv.Key] = kv.Value
	}
	kvs := make([]attribute.KeyValue, 0, len(merged))
	for k, v := range merged {
		kvs = append(kvs, attribute.KeyValue{Key: k, Value: v})
	}
	return &Resource{attrs: attribute.NewSet(kvs...), schemaURL: schemaURL}, errs
}

// Default returns the Resource used when a provider is built without an
// explicit one: telemetry.sdk.* identity attributes plus any
// OTEL_SERVICE_NAME / OTEL_RESOURCE_ATTRIBUTES overrides from the process
// environment (spec.md §6, SPEC_FULL.md C19).
func Default() *Resource {
	return defaultResource()
}

// String renders r as a stable, sorted "key=value,key=value" string,
// convenient for log lines and test fixtures.
func (r *Resource) String() string {
	if r == nil {
		return ""
	}
	var out []byte
	for i, kv := range r.attrs.ToSlice() {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, []byte(kv.Key)...)
		out = append(out, '=')
		out = append(out, []byte(kv.Value.Emit())...)
	}
	return string(out)
}
