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

// Package attribute provides the key/value model used to describe spans,
// log records, and metric measurements: an interned Key, a tagged Value,
// and the canonical, de-duplicated Set used as an aggregation identity.
package attribute // import "go.opentelemetry.io/otelcore/attribute"

// Key is a label name. Equality is byte-wise on its string contents.
type Key string

// Bool creates a KeyValue with a BOOL Value.
func (k Key) Bool(v bool) KeyValue { return KeyValue{Key: k, Value: BoolValue(v)} }

// BoolSlice creates a KeyValue with a BOOLSLICE Value.
func (k Key) BoolSlice(v []bool) KeyValue { return KeyValue{Key: k, Value: BoolSliceValue(v)} }

// Int64 creates a KeyValue with an INT64 Value.
func (k Key) Int64(v int64) KeyValue { return KeyValue{Key: k, Value: Int64Value(v)} }

// Int64Slice creates a KeyValue with an INT64SLICE Value.
func (k Key) Int64Slice(v []int64) KeyValue { return KeyValue{Key: k, Value: Int64SliceValue(v)} }

// Int creates a KeyValue with an INT64 Value from a platform int.
func (k Key) Int(v int) KeyValue { return k.Int64(int64(v)) }

// Float64 creates a KeyValue with a FLOAT64 Value.
func (k Key) Float64(v float64) KeyValue { return KeyValue{Key: k, Value: Float64Value(v)} }

// Float64Slice creates a KeyValue with a FLOAT64SLICE Value.
func (k Key) Float64Slice(v []float64) KeyValue {
	return KeyValue{Key: k, Value: Float64SliceValue(v)}
}

// String creates a KeyValue with a STRING Value.
func (k Key) String(v string) KeyValue { return KeyValue{Key: k, Value: StringValue(v)} }

// StringSlice creates a KeyValue with a STRINGSLICE Value.
func (k Key) StringSlice(v []string) KeyValue {
	return KeyValue{Key: k, Value: StringSliceValue(v)}
}

// Defined returns true for a non-empty key.
func (k Key) Defined() bool { return len(k) != 0 }
