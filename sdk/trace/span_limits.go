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

import "go.opentelemetry.io/otelcore/sdk/internal/env"

// SpanLimits bounds a recording span's attributes, events, and links
// (spec.md §3's "bounded sequence" invariant).
type SpanLimits struct {
	AttributeCountLimit        int
	EventCountLimit            int
	LinkCountLimit             int
	AttributePerEventCountLimit int
	AttributePerLinkCountLimit  int
	AttributeValueLengthLimit  int
}

// DefaultSpanLimits returns the limits used when a TracerProvider is built
// without WithSpanLimits, applying OTEL_*_LIMIT overrides when the
// embedder's environment supplies them (spec.md §6, SPEC_FULL.md C19).
func DefaultSpanLimits() SpanLimits {
	return SpanLimits{
		AttributeCountLimit:         env.IntEnv("OTEL_SPAN_ATTRIBUTE_COUNT_LIMIT", 128),
		EventCountLimit:             env.IntEnv("OTEL_SPAN_EVENT_COUNT_LIMIT", 128),
		LinkCountLimit:              env.IntEnv("OTEL_SPAN_LINK_COUNT_LIMIT", 128),
		AttributePerEventCountLimit: env.IntEnv("OTEL_EVENT_ATTRIBUTE_COUNT_LIMIT", 128),
		AttributePerLinkCountLimit:  env.IntEnv("OTEL_LINK_ATTRIBUTE_COUNT_LIMIT", 128),
		AttributeValueLengthLimit:   env.IntEnv("OTEL_ATTRIBUTE_VALUE_LENGTH_LIMIT", -1),
	}
}
