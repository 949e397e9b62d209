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

// Package instrumentation provides the identity of the instrumentation
// library (tracer/meter/logger name, version, schema URL) attached to
// every span, log record, and metric stream it produces.
package instrumentation // import "go.opentelemetry.io/otelcore/sdk/instrumentation"

// Scope represents the instrumentation scope that produced a piece of
// telemetry: the name passed to TracerProvider.Tracer / MeterProvider.Meter
// / LoggerProvider.Logger, plus its version and schema URL.
type Scope struct {
	Name      string
	Version   string
	SchemaURL string
}
