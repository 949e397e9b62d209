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

package trace // import "go.opentelemetry.io/otelcore/trace"

import "context"

type spanContextKeyType int

const activeSpanKey spanContextKeyType = 0

// ContextWithSpan returns a copy of parent with span set as the active span.
func ContextWithSpan(parent context.Context, span Span) context.Context {
	return context.WithValue(parent, activeSpanKey, span)
}

// ContextWithSpanContext returns a copy of parent with a non-recording span
// wrapping sc set as the active span; it is used when propagating a remote
// parent that will not itself be recorded locally.
func ContextWithSpanContext(parent context.Context, sc SpanContext) context.Context {
	return ContextWithSpan(parent, nonRecordingSpan{sc: sc})
}

// ContextWithRemoteSpanContext is an alias for ContextWithSpanContext that
// additionally marks sc as remote, for propagator Extract implementations.
func ContextWithRemoteSpanContext(parent context.Context, sc SpanContext) context.Context {
	return ContextWithSpanContext(parent, sc.WithRemote(true))
}

// SpanFromContext returns the active span in ctx, or a no-op Span if none
// is set.
func SpanFromContext(ctx context.Context) Span {
	if ctx == nil {
		return noopSpan{}
	}
	if span, ok := ctx.Value(activeSpanKey).(Span); ok && span != nil {
		return span
	}
	return noopSpan{}
}

// SpanContextFromContext is a convenience wrapper for
// SpanFromContext(ctx).SpanContext().
func SpanContextFromContext(ctx context.Context) SpanContext {
	return SpanFromContext(ctx).SpanContext()
}
