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

package propagation // import "go.opentelemetry.io/otelcore/propagation"

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"go.opentelemetry.io/otelcore/trace"
)

const (
	traceparentHeader = "traceparent"
	tracestateHeader  = "tracestate"
	supportedVersion  = 0
)

// TraceContext implements the W3C Trace Context propagation format
// (traceparent / tracestate headers).
type TraceContext struct{}

var _ TextMapPropagator = TraceContext{}

// Inject writes ctx's active SpanContext into carrier as a traceparent
// header, plus tracestate if present. A span context that is not valid is
// not injected.
func (tc TraceContext) Inject(ctx context.Context, carrier TextMapCarrier) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return
	}

	h := fmt.Sprintf("%02x-%s-%s-%s",
		supportedVersion, sc.TraceID(), sc.SpanID(), sc.TraceFlags())
	carrier.Set(traceparentHeader, h)

	if ts := sc.TraceState().String(); ts != "" {
		carrier.Set(tracestateHeader, ts)
	}
}

// Extract reads a traceparent (and optional tracestate) header from carrier
// and returns a Context carrying the resulting remote SpanContext. If the
// header is missing or malformed, ctx is returned unchanged.
func (tc TraceContext) Extract(ctx context.Context, carrier TextMapCarrier) context.Context {
	sc, ok := extract(carrier)
	if !ok {
		return ctx
	}
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}

func extract(carrier TextMapCarrier) (trace.SpanContext, bool) {
	h := carrier.Get(traceparentHeader)
	parts := strings.Split(h, "-")
	if len(parts) < 4 {
		return trace.SpanContext{}, false
	}

	versionBytes, err := hex.DecodeString(parts[0])
	if err != nil || len(versionBytes) != 1 {
		return trace.SpanContext{}, false
	}

	traceID, err := trace.TraceIDFromHex(parts[1])
	if err != nil {
		return trace.SpanContext{}, false
	}
	spanID, err := trace.SpanIDFromHex(parts[2])
	if err != nil {
		return trace.SpanContext{}, false
	}
	flagsBytes, err := hex.DecodeString(parts[3])
	if err != nil || len(flagsBytes) != 1 {
		return trace.SpanContext{}, false
	}

	cfg := trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.TraceFlags(flagsBytes[0]),
		Remote:     true,
	}
	if ts, err := trace.ParseTraceState(carrier.Get(tracestateHeader)); err == nil {
		cfg.TraceState = ts
	}
	return trace.NewSpanContext(cfg), true
}

// Fields returns the header names TraceContext reads and writes.
func (tc TraceContext) Fields() []string {
	return []string{traceparentHeader, tracestateHeader}
}
