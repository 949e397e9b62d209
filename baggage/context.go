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

package baggage // import "go.opentelemetry.io/otelcore/baggage"

import "context"

type baggageContextKeyType int

const baggageKey baggageContextKeyType = 0

// ContextWithBaggage returns a copy of parent carrying b. It does not
// replace or interact with any active span stored in parent.
func ContextWithBaggage(parent context.Context, b Baggage) context.Context {
	return context.WithValue(parent, baggageKey, b)
}

// ContextWithoutBaggage returns a copy of parent with any Baggage removed.
func ContextWithoutBaggage(parent context.Context) context.Context {
	return context.WithValue(parent, baggageKey, nil)
}

// FromContext returns the Baggage carried by ctx, or the empty Baggage if
// none is present.
func FromContext(ctx context.Context) Baggage {
	b, ok := ctx.Value(baggageKey).(Baggage)
	if !ok {
		return Baggage{}
	}
	return b
}
