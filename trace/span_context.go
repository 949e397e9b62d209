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

// SpanContext identifies a span on the wire. It is immutable once
// constructed; use the With* methods to derive a modified copy.
type SpanContext struct {
	traceID    TraceID
	spanID     SpanID
	traceFlags TraceFlags
	traceState TraceState
	remote     bool
}

// NewSpanContext builds a SpanContext from its constituent fields.
func NewSpanContext(cfg SpanContextConfig) SpanContext {
	return SpanContext{
		traceID:    cfg.TraceID,
		spanID:     cfg.SpanID,
		traceFlags: cfg.TraceFlags,
		traceState: cfg.TraceState,
		remote:     cfg.Remote,
	}
}

// SpanContextConfig is the set of fields used to construct a SpanContext.
type SpanContextConfig struct {
	TraceID    TraceID
	SpanID     SpanID
	TraceFlags TraceFlags
	TraceState TraceState
	Remote     bool
}

// IsValid reports whether both the trace and span IDs are non-zero.
func (sc SpanContext) IsValid() bool { return sc.traceID.IsValid() && sc.spanID.IsValid() }

// TraceID returns sc's trace ID.
func (sc SpanContext) TraceID() TraceID { return sc.traceID }

// SpanID returns sc's span ID.
func (sc SpanContext) SpanID() SpanID { return sc.spanID }

// TraceFlags returns sc's trace flags.
func (sc SpanContext) TraceFlags() TraceFlags { return sc.traceFlags }

// IsSampled reports whether the sampled bit is set.
func (sc SpanContext) IsSampled() bool { return sc.traceFlags.IsSampled() }

// TraceState returns sc's trace state.
func (sc SpanContext) TraceState() TraceState { return sc.traceState }

// IsRemote reports whether sc was propagated from a remote parent.
func (sc SpanContext) IsRemote() bool { return sc.remote }

// WithTraceID returns a copy of sc with the trace ID replaced.
func (sc SpanContext) WithTraceID(traceID TraceID) SpanContext {
	sc.traceID = traceID
	return sc
}

// WithSpanID returns a copy of sc with the span ID replaced.
func (sc SpanContext) WithSpanID(spanID SpanID) SpanContext {
	sc.spanID = spanID
	return sc
}

// WithTraceFlags returns a copy of sc with the trace flags replaced.
func (sc SpanContext) WithTraceFlags(flags TraceFlags) SpanContext {
	sc.traceFlags = flags
	return sc
}

// WithTraceState returns a copy of sc with the trace state replaced.
func (sc SpanContext) WithTraceState(state TraceState) SpanContext {
	sc.traceState = state
	return sc
}

// WithRemote returns a copy of sc with the remote flag set to remote.
func (sc SpanContext) WithRemote(remote bool) SpanContext {
	sc.remote = remote
	return sc
}

// Equal reports whether sc and other hold identical fields.
func (sc SpanContext) Equal(other SpanContext) bool {
	return sc.traceID == other.traceID &&
		sc.spanID == other.spanID &&
		sc.traceFlags == other.traceFlags &&
		sc.traceState.String() == other.traceState.String() &&
		sc.remote == other.remote
}
