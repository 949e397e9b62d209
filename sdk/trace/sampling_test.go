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

package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apitrace "go.opentelemetry.io/otelcore/trace"
)

func TestAlwaysAndNeverSample(t *testing.T) {
	params := SamplingParameters{TraceID: apitrace.TraceID{1}}
	require.Equal(t, RecordAndSample, AlwaysSample().ShouldSample(params).Decision)
	require.Equal(t, Drop, NeverSample().ShouldSample(params).Decision)
}

func TestTraceIDRatioBasedBoundaries(t *testing.T) {
	assert.IsType(t, alwaysOnSampler{}, TraceIDRatioBased(1))
	assert.IsType(t, alwaysOnSampler{}, TraceIDRatioBased(2))

	s := TraceIDRatioBased(0)
	for i := 0; i < 10; i++ {
		tid := apitrace.TraceID{}
		tid[15] = byte(i)
		got := s.ShouldSample(SamplingParameters{TraceID: tid}).Decision
		assert.Equal(t, Drop, got)
	}
}

func TestTraceIDRatioBasedIsDeterministic(t *testing.T) {
	s := TraceIDRatioBased(0.5)
	tid := apitrace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	first := s.ShouldSample(SamplingParameters{TraceID: tid}).Decision
	for i := 0; i < 5; i++ {
		got := s.ShouldSample(SamplingParameters{TraceID: tid}).Decision
		assert.Equal(t, first, got)
	}
}

func TestParentBasedDelegatesToRootWithoutParent(t *testing.T) {
	s := ParentBased(NeverSample())
	got := s.ShouldSample(SamplingParameters{}).Decision
	assert.Equal(t, Drop, got)
}

func TestParentBasedHonorsParentSampledFlag(t *testing.T) {
	s := ParentBased(NeverSample())

	sampledParent := apitrace.NewSpanContext(apitrace.SpanContextConfig{
		TraceID:    apitrace.TraceID{1},
		SpanID:     apitrace.SpanID{1},
		TraceFlags: apitrace.FlagsSampled,
	})
	got := s.ShouldSample(SamplingParameters{ParentContext: sampledParent}).Decision
	assert.Equal(t, RecordAndSample, got)

	unsampledParent := apitrace.NewSpanContext(apitrace.SpanContextConfig{
		TraceID: apitrace.TraceID{1},
		SpanID:  apitrace.SpanID{1},
	})
	got = s.ShouldSample(SamplingParameters{ParentContext: unsampledParent}).Decision
	assert.Equal(t, Drop, got)
}

func TestParentBasedDistinguishesRemoteFromLocal(t *testing.T) {
	s := ParentBased(AlwaysSample(), WithRemoteParentSampled(NeverSample()))

	remoteSampled := apitrace.NewSpanContext(apitrace.SpanContextConfig{
		TraceID:    apitrace.TraceID{1},
		SpanID:     apitrace.SpanID{1},
		TraceFlags: apitrace.FlagsSampled,
		Remote:     true,
	})
	assert.Equal(t, Drop, s.ShouldSample(SamplingParameters{ParentContext: remoteSampled}).Decision)

	localSampled := apitrace.NewSpanContext(apitrace.SpanContextConfig{
		TraceID:    apitrace.TraceID{1},
		SpanID:     apitrace.SpanID{1},
		TraceFlags: apitrace.FlagsSampled,
	})
	assert.Equal(t, RecordAndSample, s.ShouldSample(SamplingParameters{ParentContext: localSampled}).Decision)
}

func TestDescriptionsAreStable(t *testing.T) {
	assert.Equal(t, "AlwaysOnSampler", AlwaysSample().Description())
	assert.Equal(t, "AlwaysOffSampler", NeverSample().Description())
	assert.Contains(t, TraceIDRatioBased(0.25).Description(), "0.25")
}
