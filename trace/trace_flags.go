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

package trace // import "go.opentelemetry.io/otelcore/trace"

// TraceFlags is an 8-bit bitfield carried on the wire alongside a trace ID.
// Only bit 0 is currently defined.
type TraceFlags byte

const (
	// FlagsSampled is set when the span has been sampled.
	FlagsSampled = TraceFlags(1 << 0)
)

// IsSampled reports whether the sampled flag is set.
func (tf TraceFlags) IsSampled() bool { return tf&FlagsSampled == FlagsSampled }

// WithSampled returns a copy of tf with the sampled bit set to sampled.
func (tf TraceFlags) WithSampled(sampled bool) TraceFlags {
	if sampled {
		return tf | FlagsSampled
	}
	return tf &^ FlagsSampled
}

// String returns the hex encoding of tf.
func (tf TraceFlags) String() string {
	const hextable = "0123456789abcdef"
	return string([]byte{hextable[tf>>4], hextable[tf&0xf]})
}
