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

package attribute // import "go.opentelemetry.io/otelcore/attribute"

// KeyValue is a (Key, Value) pair.
type KeyValue struct {
	Key   Key
	Value Value
}

// Valid reports whether kv has a non-empty key.
func (kv KeyValue) Valid() bool { return kv.Key.Defined() }

// Bool creates a KeyValue with a BOOL Value.
func Bool(k string, v bool) KeyValue { return Key(k).Bool(v) }

// Int64 creates a KeyValue with an INT64 Value.
func Int64(k string, v int64) KeyValue { return Key(k).Int64(v) }

// Int creates a KeyValue with an INT64 Value from a platform int.
func Int(k string, v int) KeyValue { return Key(k).Int(v) }

// Float64 creates a KeyValue with a FLOAT64 Value.
func Float64(k string, v float64) KeyValue { return Key(k).Float64(v) }

// String creates a KeyValue with a STRING Value.
func String(k, v string) KeyValue { return Key(k).String(v) }

// BoolSlice creates a KeyValue with a BOOLSLICE Value.
func BoolSlice(k string, v []bool) KeyValue { return Key(k).BoolSlice(v) }

// Int64Slice creates a KeyValue with an INT64SLICE Value.
func Int64Slice(k string, v []int64) KeyValue { return Key(k).Int64Slice(v) }

// Float64Slice creates a KeyValue with a FLOAT64SLICE Value.
func Float64Slice(k string, v []float64) KeyValue { return Key(k).Float64Slice(v) }

// StringSlice creates a KeyValue with a STRINGSLICE Value.
func StringSlice(k string, v []string) KeyValue { return Key(k).StringSlice(v) }
