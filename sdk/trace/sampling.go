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
	"encoding/binary"
	"fmt"

	"go.opentelemetry.io/otelcore/attribute"
	apitrace "go.opentelemetry.io/otelcore/trace"
)

// SamplingDecision is the Sampler's pre-span decision (spec.md §4.5).
type SamplingDecision int

const (
	// Drop means the span will not be recorded and all events, attributes
	// and the name will be discarded.
	Drop SamplingDecision = iota
	// RecordOnly means the span's Recorded field is set but the sampled
	// flag of its SpanContext will not be set.
	RecordOnly
	// RecordAndSample means the span's Recorded field and the sampled
	// flag of its SpanContext will both be set.
	RecordAndSample
)

// SamplingParameters carries everything a Sampler needs to decide.
type SamplingParameters struct {
	ParentContext apitrace.SpanContext
	TraceID       apitrace.TraceID
	Name          string
	Kind          apitrace.SpanKind
	Attributes    []attribute.KeyValue
	Links         []apitrace.Link
}

// SamplingResult is the Sampler's verdict.
type SamplingResult struct {
	Decision   SamplingDecision
	Attributes []attribute.KeyValue
	Tracestate apitrace.TraceState
}

// Sampler decides whether and how a span is sampled.
type Sampler interface {
	ShouldSample(parameters SamplingParameters) SamplingResult
	Description() string
}

type alwaysOnSampler struct{}

func (alwaysOnSampler) ShouldSample(p SamplingParameters) SamplingResult {
	return SamplingResult{Decision: RecordAndSample, Tracestate: p.ParentContext.TraceState()}
}

func (alwaysOnSampler) Description() string { return "AlwaysOnSampler" }

// AlwaysSample returns a Sampler that always samples.
func AlwaysSample() Sampler { return alwaysOnSampler{} }

type alwaysOffSampler struct{}

func (alwaysOffSampler) ShouldSample(p SamplingParameters) SamplingResult {
	return SamplingResult{Decision: Drop, Tracestate: p.ParentContext.TraceState()}
}

func (alwaysOffSampler) Description() string { return "AlwaysOffSampler" }

// NeverSample returns a Sampler that never samples.
func NeverSample() Sampler { return alwaysOffSampler{} }

// traceIDRatioSampler samples a fraction of traces, determined deterministically
// by the TraceID.
type traceIDRatioSampler struct {
	ratio     float64
	threshold uint64
}

// TraceIDRatioBased returns a Sampler that samples a given fraction of
// traces, determined deterministically by the low 64 bits of the TraceID
// shifted right by one,
// so that sub-samplers with a lower ratio always sample a subset of a
// sampler with a higher ratio (spec.md §4.5 / §8).
func TraceIDRatioBased(ratio float64) Sampler {
	if ratio >= 1 {
		return alwaysOnSampler{}
	}
	if ratio <= 0 {
		ratio = 0
	}
	return &traceIDRatioSampler{
		ratio:     ratio,
		threshold: uint64(ratio * (1 << 63)),
	}
}

func (ts *traceIDRatioSampler) ShouldSample(p SamplingParameters) SamplingResult {
	result := SamplingResult{Tracestate: p.ParentContext.TraceState()}
	low := binary.BigEndian.Uint64(p.TraceID[8:16]) >> 1
	if low < ts.threshold {
		result.Decision = RecordAndSample
	} else {
		result.Decision = Drop
	}
	return result
}

func (ts *traceIDRatioSampler) Description() string {
	return fmt.Sprintf("TraceIDRatioBased{%g}", ts.ratio)
}

type parentBased struct {
	root                     Sampler
	remoteParentSampled      Sampler
	remoteParentNotSampled   Sampler
	localParentSampled       Sampler
	localParentNotSampled    Sampler
}

// ParentBasedSamplerOption customizes the four child samplers consulted by
// ParentBased when a parent span context is present.
type ParentBasedSamplerOption interface {
	applyParentBased(parentBased) parentBased
}

type parentBasedOptionFunc func(parentBased) parentBased

func (f parentBasedOptionFunc) applyParentBased(pb parentBased) parentBased { return f(pb) }

// WithRemoteParentSampled sets the sampler used when the parent is remote
// and sampled.
func WithRemoteParentSampled(s Sampler) ParentBasedSamplerOption {
	return parentBasedOptionFunc(func(pb parentBased) parentBased { pb.remoteParentSampled = s; return pb })
}

// WithRemoteParentNotSampled sets the sampler used when the parent is
// remote and not sampled.
func WithRemoteParentNotSampled(s Sampler) ParentBasedSamplerOption {
	return parentBasedOptionFunc(func(pb parentBased) parentBased { pb.remoteParentNotSampled = s; return pb })
}

// WithLocalParentSampled sets the sampler used when the parent is local and
// sampled.
func WithLocalParentSampled(s Sampler) ParentBasedSamplerOption {
	return parentBasedOptionFunc(func(pb parentBased) parentBased { pb.localParentSampled = s; return pb })
}

// WithLocalParentNotSampled sets the sampler used when the parent is local
// and not sampled.
func WithLocalParentNotSampled(s Sampler) ParentBasedSamplerOption {
	return parentBasedOptionFunc(func(pb parentBased) parentBased { pb.localParentNotSampled = s; return pb })
}

// ParentBased returns a Sampler that consults the parent SpanContext's
// sampled flag and remoteness, delegating to root when there is no parent.
func ParentBased(root Sampler, opts ...ParentBasedSamplerOption) Sampler {
	if root == nil {
		root = AlwaysSample()
	}
	pb := parentBased{
		root:                   root,
		remoteParentSampled:    AlwaysSample(),
		remoteParentNotSampled: NeverSample(),
		localParentSampled:     AlwaysSample(),
		localParentNotSampled:  NeverSample(),
	}
	for _, opt := range opts {
		pb = opt.applyParentBased(pb)
	}
	return &pb
}

func (pb *parentBased) ShouldSample(p SamplingParameters) SamplingResult {
	psc := p.ParentContext
	if !psc.IsValid() {
		return pb.root.ShouldSample(p)
	}
	if psc.IsRemote() {
		if psc.IsSampled() {
			return pb.remoteParentSampled.ShouldSample(p)
		}
		return pb.remoteParentNotSampled.ShouldSample(p)
	}
	if psc.IsSampled() {
		return pb.localParentSampled.ShouldSample(p)
	}
	return pb.localParentNotSampled.ShouldSample(p)
}

func (pb *parentBased) Description() string {
	return fmt.Sprintf(
		"ParentBased{root:%s,remoteParentSampled:%s,remoteParentNotSampled:%s,localParentSampled:%s,localParentNotSampled:%s}",
		pb.root.Description(),
		pb.remoteParentSampled.Description(),
		pb.remoteParentNotSampled.Description(),
		pb.localParentSampled.Description(),
		pb.localParentNotSampled.Description(),
	)
}
