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

// Package log is the user-facing API for emitting structured log records
// correlated with the active trace context.
package log // import "go.opentelemetry.io/otelcore/log"

import (
	"context"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
)

// Severity is a log record's severity level, following the OTel log data
// model's 1-24 numeric range grouped into TRACE/DEBUG/INFO/WARN/ERROR/FATAL
// bands of four.
type Severity int

const (
	SeverityUndefined Severity = iota
	SeverityTrace1
	SeverityTrace2
	SeverityTrace3
	SeverityTrace4
	SeverityDebug1
	SeverityDebug2
	SeverityDebug3
	SeverityDebug4
	SeverityInfo1
	SeverityInfo2
	SeverityInfo3
	SeverityInfo4
	SeverityWarn1
	SeverityWarn2
	SeverityWarn3
	SeverityWarn4
	SeverityError1
	SeverityError2
	SeverityError3
	SeverityError4
	SeverityFatal1
	SeverityFatal2
	SeverityFatal3
	SeverityFatal4
)

const (
	SeverityTrace = SeverityTrace1
	SeverityDebug = SeverityDebug1
	SeverityInfo  = SeverityInfo1
	SeverityWarn  = SeverityWarn1
	SeverityError = SeverityError1
	SeverityFatal = SeverityFatal1
)

// Record is a single log entry passed to Logger.Emit. Its zero value is a
// valid, empty record.
type Record struct {
	Timestamp         time.Time
	ObservedTimestamp time.Time
	Severity          Severity
	SeverityText      string
	Body              attribute.Value
	Attributes        []attribute.KeyValue
}

// AddAttributes appends kv to the record's attribute list.
func (r *Record) AddAttributes(kv ...attribute.KeyValue) {
	r.Attributes = append(r.Attributes, kv...)
}

// Logger emits log records, automatically attaching the trace context
// active in ctx when present.
type Logger interface {
	Emit(ctx context.Context, record Record)
}

// LoggerProvider provides access to Loggers.
type LoggerProvider interface {
	Logger(name string, opts ...LoggerOption) Logger
}

// LoggerConfig is the set of options applied when a Logger is obtained.
type LoggerConfig struct {
	InstrumentationVersion string
	SchemaURL              string
}

// LoggerOption applies a value to a LoggerConfig.
type LoggerOption interface {
	applyLogger(LoggerConfig) LoggerConfig
}

type loggerOptionFunc func(LoggerConfig) LoggerConfig

func (f loggerOptionFunc) applyLogger(cfg LoggerConfig) LoggerConfig { return f(cfg) }

// WithInstrumentationVersion sets the instrumentation scope's version.
func WithInstrumentationVersion(version string) LoggerOption {
	return loggerOptionFunc(func(cfg LoggerConfig) LoggerConfig {
		cfg.InstrumentationVersion = version
		return cfg
	})
}

// WithSchemaURL sets the instrumentation scope's schema URL.
func WithSchemaURL(schemaURL string) LoggerOption {
	return loggerOptionFunc(func(cfg LoggerConfig) LoggerConfig {
		cfg.SchemaURL = schemaURL
		return cfg
	})
}

// NewLoggerConfig applies opts in order and returns the resulting config.
func NewLoggerConfig(opts ...LoggerOption) LoggerConfig {
	var cfg LoggerConfig
	for _, opt := range opts {
		cfg = opt.applyLogger(cfg)
	}
	return cfg
}
