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

import (
	"fmt"
	"math"
	"strconv"
)

// Type describes the type of the data held in a Value.
type Type int

const (
	// INVALID is used for a zero-value Value.
	INVALID Type = iota
	BOOL
	INT64
	FLOAT64
	STRING
	BOOLSLICE
	INT64SLICE
	FLOAT64SLICE
	STRINGSLICE
)

// Value represents a tagged, immutable scalar or homogeneous-array value.
type Value struct {
	vtype    Type
	numeric  uint64
	stringly string
	slice    interface{}
}

// BoolValue creates a BOOL Value.
func BoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{vtype: BOOL, numeric: n}
}

// BoolSliceValue creates a BOOLSLICE Value.
func BoolSliceValue(v []bool) Value {
	cp := make([]bool, len(v))
	copy(cp, v)
	return Value{vtype: BOOLSLICE, slice: cp}
}

// Int64Value creates an INT64 Value.
func Int64Value(v int64) Value {
	return Value{vtype: INT64, numeric: uint64(v)}
}

// Int64SliceValue creates an INT64SLICE Value.
func Int64SliceValue(v []int64) Value {
	cp := make([]int64, len(v))
	copy(cp, v)
	return Value{vtype: INT64SLICE, slice: cp}
}

// Float64Value creates a FLOAT64 Value.
func Float64Value(v float64) Value {
	return Value{vtype: FLOAT64, numeric: uint64Bits(v)}
}

// Float64SliceValue creates a FLOAT64SLICE Value.
func Float64SliceValue(v []float64) Value {
	cp := make([]float64, len(v))
	copy(cp, v)
	return Value{vtype: FLOAT64SLICE, slice: cp}
}

// StringValue creates a STRING Value.
func StringValue(v string) Value {
	return Value{vtype: STRING, stringly: v}
}

// StringSliceValue creates a STRINGSLICE Value.
func StringSliceValue(v []string) Value {
	cp := make([]string, len(v))
	copy(cp, v)
	return Value{vtype: STRINGSLICE, slice: cp}
}

// Type returns the type of the Value.
func (v Value) Type() Type { return v.vtype }

// AsBool returns the bool value held by v. The result is undefined for any
// other Type.
func (v Value) AsBool() bool { return v.numeric == 1 }

// AsInt64 returns the int64 value held by v.
func (v Value) AsInt64() int64 { return int64(v.numeric) }

// AsFloat64 returns the float64 value held by v.
func (v Value) AsFloat64() float64 { return float64frombits(v.numeric) }

// AsString returns the string value held by v.
func (v Value) AsString() string { return v.stringly }

// AsBoolSlice returns the []bool value held by v.
func (v Value) AsBoolSlice() []bool {
	if v.vtype != BOOLSLICE {
		return nil
	}
	return v.slice.([]bool)
}

// AsInt64Slice returns the []int64 value held by v.
func (v Value) AsInt64Slice() []int64 {
	if v.vtype != INT64SLICE {
		return nil
	}
	return v.slice.([]int64)
}

// AsFloat64Slice returns the []float64 value held by v.
func (v Value) AsFloat64Slice() []float64 {
	if v.vtype != FLOAT64SLICE {
		return nil
	}
	return v.slice.([]float64)
}

// AsStringSlice returns the []string value held by v.
func (v Value) AsStringSlice() []string {
	if v.vtype != STRINGSLICE {
		return nil
	}
	return v.slice.([]string)
}

// AsInterface returns the value held by v as an interface{}.
func (v Value) AsInterface() interface{} {
	switch v.Type() {
	case BOOL:
		return v.AsBool()
	case BOOLSLICE:
		return v.AsBoolSlice()
	case INT64:
		return v.AsInt64()
	case INT64SLICE:
		return v.AsInt64Slice()
	case FLOAT64:
		return v.AsFloat64()
	case FLOAT64SLICE:
		return v.AsFloat64Slice()
	case STRING:
		return v.AsString()
	case STRINGSLICE:
		return v.AsStringSlice()
	}
	return nil
}

// Emit returns a printable, human-readable form of v.
func (v Value) Emit() string {
	switch v.Type() {
	case BOOL:
		return strconv.FormatBool(v.AsBool())
	case INT64:
		return strconv.FormatInt(v.AsInt64(), 10)
	case FLOAT64:
		return strconv.FormatFloat(v.AsFloat64(), 'g', -1, 64)
	case STRING:
		return v.stringly
	case BOOLSLICE, INT64SLICE, FLOAT64SLICE, STRINGSLICE:
		return fmt.Sprint(v.slice)
	default:
		return "unknown"
	}
}

func (t Type) String() string {
	switch t {
	case INVALID:
		return "INVALID"
	case BOOL:
		return "BOOL"
	case INT64:
		return "INT64"
	case FLOAT64:
		return "FLOAT64"
	case STRING:
		return "STRING"
	case BOOLSLICE:
		return "BOOLSLICE"
	case INT64SLICE:
		return "INT64SLICE"
	case FLOAT64SLICE:
		return "FLOAT64SLICE"
	case STRINGSLICE:
		return "STRINGSLICE"
	}
	return "unknown"
}

func uint64Bits(v float64) uint64      { return math.Float64bits(v) }
func float64frombits(v uint64) float64 { return math.Float64frombits(v) }
