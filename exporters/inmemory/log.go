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

package inmemory // import "go.opentelemetry.io/otelcore/exporters/inmemory"

import (
	"context"
	"sync"

	sdklog "go.opentelemetry.io/otelcore/sdk/log"
)

// LogExporter collects every exported log record in memory.
type LogExporter struct {
	mu      sync.Mutex
	records []*sdklog.ReadableLogRecord
}

// NewLogExporter returns an empty LogExporter.
func NewLogExporter() *LogExporter { return &LogExporter{} }

var _ sdklog.LogExporter = (*LogExporter)(nil)

// Export appends records to the exporter's buffer.
func (e *LogExporter) Export(_ context.Context, records []*sdklog.ReadableLogRecord) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.records = append(e.records, records...)
	return nil
}

// Shutdown is a no-op; GetRecords still returns what was collected.
func (e *LogExporter) Shutdown(context.Context) error { return nil }

// GetRecords returns a copy of every record exported so far.
func (e *LogExporter) GetRecords() []*sdklog.ReadableLogRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*sdklog.ReadableLogRecord, len(e.records))
	copy(out, e.records)
	return out
}
