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

package trace // import "go.opentelemetry.io/otelcore/sdk/trace"

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"math"
	mathrand "math/rand"
	"sync"

	apitrace "go.opentelemetry.io/otelcore/trace"
)

// IDGenerator allocates trace and span IDs. Implementations must never
// return an all-zero ID (spec.md §4.5).
type IDGenerator interface {
	NewIDs(ctx context.Context) (apitrace.TraceID, apitrace.SpanID)
	NewSpanID(ctx context.Context, traceID apitrace.TraceID) apitrace.SpanID
}

type randomIDGenerator struct {
	sync.Mutex
	randSource *mathrand.Rand
}

var _ IDGenerator = (*randomIDGenerator)(nil)

func (gen *randomIDGenerator) NewSpanID(ctx context.Context, traceID apitrace.TraceID) apitrace.SpanID {
	gen.Lock()
	defer gen.Unlock()
	sid := apitrace.SpanID{}
	for {
		_, _ = gen.randSource.Read(sid[:])
		if sid.IsValid() {
			return sid
		}
	}
}

func (gen *randomIDGenerator) NewIDs(ctx context.Context) (apitrace.TraceID, apitrace.SpanID) {
	gen.Lock()
	defer gen.Unlock()
	tid := apitrace.TraceID{}
	sid := apitrace.SpanID{}
	for {
		_, _ = gen.randSource.Read(tid[:])
		if tid.IsValid() {
			break
		}
	}
	for {
		_, _ = gen.randSource.Read(sid[:])
		if sid.IsValid() {
			break
		}
	}
	return tid, sid
}

// defaultIDGenerator returns an IDGenerator seeded from a CSPRNG, matching
// real deployments where predictable trace IDs would be a diagnostic
// liability.
func defaultIDGenerator() IDGenerator {
	var seed int64
	if err := binary.Read(rand.Reader, binary.BigEndian, &seed); err != nil {
		seed = int64(math.MaxInt64 / 2)
	}
	return &randomIDGenerator{
		randSource: mathrand.New(mathrand.NewSource(seed)),
	}
}
