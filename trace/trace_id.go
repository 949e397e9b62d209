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

// Package trace is the tracing API: the types instrumented code uses to
// start and annotate spans (C4, C6, C7). The SDK's implementation —
// sampling, span recording, batching — lives in sdk/trace.
package trace // import "go.opentelemetry.io/otelcore/trace"

import (
	"encoding/hex"
	"encoding/json"
	"errors"
)

const (
	// maxTraceIDHexLen is the length of a hex-encoded TraceID.
	maxTraceIDHexLen = 32
	// maxSpanIDHexLen is the length of a hex-encoded SpanID.
	maxSpanIDHexLen = 16
)

var (
	nilTraceID TraceID
	nilSpanID  SpanID

	errInvalidTraceIDLength = errors.New("trace: invalid length for TraceID")
	errInvalidSpanIDLength  = errors.New("trace: invalid length for SpanID")
	errNilTraceID           = errors.New("trace: trace-id can't be all zero")
	errNilSpanID            = errors.New("trace: span-id can't be all zero")
)

// TraceID is a unique 128-bit identifier for a trace.
type TraceID [16]byte

// IsValid reports whether tid is not all zero.
func (tid TraceID) IsValid() bool { return tid != nilTraceID }

// String returns the lowercase hex encoding of tid.
func (tid TraceID) String() string { return hex.EncodeToString(tid[:]) }

// MarshalJSON implements json.Marshaler.
func (tid TraceID) MarshalJSON() ([]byte, error) { return json.Marshal(tid.String()) }

// TraceIDFromHex parses a 32-character lowercase hex string into a TraceID.
func TraceIDFromHex(h string) (TraceID, error) {
	tid := TraceID{}
	if len(h) != maxTraceIDHexLen {
		return tid, errInvalidTraceIDLength
	}
	if err := decodeHex(h, tid[:]); err != nil {
		return TraceID{}, err
	}
	if tid == nilTraceID {
		return TraceID{}, errNilTraceID
	}
	return tid, nil
}

// SpanID is a unique 64-bit identifier for a span within a trace.
type SpanID [8]byte

// IsValid reports whether sid is not all zero.
func (sid SpanID) IsValid() bool { return sid != nilSpanID }

// String returns the lowercase hex encoding of sid.
func (sid SpanID) String() string { return hex.EncodeToString(sid[:]) }

// MarshalJSON implements json.Marshaler.
func (sid SpanID) MarshalJSON() ([]byte, error) { return json.Marshal(sid.String()) }

// SpanIDFromHex parses a 16-character lowercase hex string into a SpanID.
func SpanIDFromHex(h string) (SpanID, error) {
	sid := SpanID{}
	if len(h) != maxSpanIDHexLen {
		return sid, errInvalidSpanIDLength
	}
	if err := decodeHex(h, sid[:]); err != nil {
		return SpanID{}, err
	}
	if sid == nilSpanID {
		return SpanID{}, errNilSpanID
	}
	return sid, nil
}

func decodeHex(h string, b []byte) error {
	decoded, err := hex.DecodeString(h)
	if err != nil {
		return err
	}
	copy(b, decoded)
	return nil
}
