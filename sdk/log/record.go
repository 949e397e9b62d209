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

package log // import "go.opentelemetry.io/otelcore/sdk/log"

import (
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	apilog "go.opentelemetry.io/otelcore/log"
	"go.opentelemetry.io/otelcore/resource"
	"go.opentelemetry.io/otelcore/sdk/instrumentation"
	apitrace "go.opentelemetry.io/otelcore/trace"
)

// ReadableLogRecord is the immutable view of a log record handed to
// LogProcessors and LogExporters, correlated with the trace context that
// was active when it was emitted (spec.md C10).
type ReadableLogRecord struct {
	timestamp         time.Time
	observedTimestamp time.Time
	severity          apilog.Severity
	severityText      string
	body              attribute.Value
	attrs             []attribute.KeyValue
	droppedAttrs      int

	traceID apitrace.TraceID
	spanID  apitrace.SpanID
	flags   apitrace.TraceFlags

	scope    instrumentation.Scope
	resource *resource.Resource
}

func (r *ReadableLogRecord) Timestamp() time.Time                 { return r.timestamp }
func (r *ReadableLogRecord) ObservedTimestamp() time.Time         { return r.observedTimestamp }
func (r *ReadableLogRecord) Severity() apilog.Severity            { return r.severity }
func (r *ReadableLogRecord) SeverityText() string                 { return r.severityText }
func (r *ReadableLogRecord) Body() attribute.Value                { return r.body }
func (r *ReadableLogRecord) Attributes() []attribute.KeyValue     { return r.attrs }
func (r *ReadableLogRecord) DroppedAttributes() int                { return r.droppedAttrs }
func (r *ReadableLogRecord) TraceID() apitrace.TraceID             { return r.traceID }
func (r *ReadableLogRecord) SpanID() apitrace.SpanID                { return r.spanID }
func (r *ReadableLogRecord) TraceFlags() apitrace.TraceFlags        { return r.flags }
func (r *ReadableLogRecord) InstrumentationScope() instrumentation.Scope { return r.scope }
func (r *ReadableLogRecord) Resource() *resource.Resource           { return r.resource }
