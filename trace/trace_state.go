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

import (
	"errors"
	"strings"
)

// maxTraceStateMembers is the W3C-recommended cap on tracestate entries.
const maxTraceStateMembers = 32

var (
	errTraceStateTooManyMembers = errors.New("trace: too many trace-state members")
	errTraceStateInvalidMember  = errors.New("trace: invalid trace-state member")
)

type traceStateMember struct{ key, value string }

// TraceState carries vendor-specific trace information across process
// boundaries, opaque to the core beyond ordering and a cardinality cap.
// Its wire codec is not defined here (spec.md §1).
type TraceState struct {
	members []traceStateMember
}

// ParseTraceState parses a comma-separated "key=value" list into a
// TraceState, rejecting empty keys/values and more than 32 members.
func ParseTraceState(s string) (TraceState, error) {
	if s == "" {
		return TraceState{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > maxTraceStateMembers {
		return TraceState{}, errTraceStateTooManyMembers
	}
	ts := TraceState{members: make([]traceStateMember, 0, len(parts))}
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" || v == "" {
			return TraceState{}, errTraceStateInvalidMember
		}
		if _, dup := seen[k]; dup {
			continue // first occurrence wins, matching attribute.Set semantics
		}
		seen[k] = struct{}{}
		ts.members = append(ts.members, traceStateMember{key: k, value: v})
	}
	return ts, nil
}

// Get returns the value for key, or "" if absent.
func (ts TraceState) Get(key string) string {
	for _, m := range ts.members {
		if m.key == key {
			return m.value
		}
	}
	return ""
}

// Insert returns a new TraceState with key=value moved to the front (the
// W3C-mandated position for the most recently updated vendor), evicting the
// oldest member if the cap would be exceeded.
func (ts TraceState) Insert(key, value string) (TraceState, error) {
	if key == "" || value == "" {
		return TraceState{}, errTraceStateInvalidMember
	}
	out := make([]traceStateMember, 0, len(ts.members)+1)
	out = append(out, traceStateMember{key: key, value: value})
	for _, m := range ts.members {
		if m.key == key {
			continue
		}
		out = append(out, m)
	}
	if len(out) > maxTraceStateMembers {
		out = out[:maxTraceStateMembers]
	}
	return TraceState{members: out}, nil
}

// Delete returns a new TraceState with key removed, if present.
func (ts TraceState) Delete(key string) TraceState {
	out := make([]traceStateMember, 0, len(ts.members))
	for _, m := range ts.members {
		if m.key != key {
			out = append(out, m)
		}
	}
	return TraceState{members: out}
}

// Len returns the number of members.
func (ts TraceState) Len() int { return len(ts.members) }

// String renders ts back into "key=value,key=value" form.
func (ts TraceState) String() string {
	var b strings.Builder
	for i, m := range ts.members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.key)
		b.WriteByte('=')
		b.WriteString(m.value)
	}
	return b.String()
}
