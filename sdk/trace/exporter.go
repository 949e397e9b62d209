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

import "context"

// SpanExporter is the pluggable sink at the end of the span pipeline
// (spec.md §6). Implementations may be synchronous or asynchronous; the
// core awaits Export before considering a batch complete. Export must not
// be called concurrently with itself by the core (the batch processor
// serializes calls through its single worker), but an implementation that
// is also used directly must guard against concurrent use itself.
type SpanExporter interface {
	// ExportSpans exports a batch of ReadOnlySpans. Returning an error
	// marks the batch as failed; the core logs and drops it (spec.md §7,
	// ExporterFailed) rather than retrying.
	ExportSpans(ctx context.Context, spans []ReadOnlySpan) error

	// Shutdown notifies the exporter no further calls will be made and
	// releases any held resources. Shutdown should be called once.
	Shutdown(ctx context.Context) error
}
