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

// Package env parses the OTEL_* environment variables honored by the SDK
// (spec.md §6). It is intentionally tiny and side-effect-free: every
// function reads os.Getenv directly so tests can use t.Setenv.
package env // import "go.opentelemetry.io/otelcore/sdk/internal/env"

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// IntEnv returns the integer value of the named environment variable, or
// fallback if it is unset or unparsable.
func IntEnv(name string, fallback int) int {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

// DurationMillisEnv returns the named environment variable, interpreted as
// a count of milliseconds, or fallback.
func DurationMillisEnv(name string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	ms, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

// FloatEnv returns the float64 value of the named environment variable, or
// fallback.
func FloatEnv(name string, fallback float64) float64 {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return f
}

// StringEnv returns the named environment variable, or fallback if unset.
func StringEnv(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// ResourceAttributesEnv parses OTEL_RESOURCE_ATTRIBUTES: a comma-separated
// list of "key=value" pairs, URL-decoded, first-wins on duplicate keys.
func ResourceAttributesEnv() map[string]string {
	raw, ok := os.LookupEnv("OTEL_RESOURCE_ATTRIBUTES")
	if !ok || raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		k = strings.TrimSpace(k)
		if _, exists := out[k]; exists {
			continue
		}
		if decoded, err := unescape(strings.TrimSpace(v)); err == nil {
			out[k] = decoded
		} else {
			out[k] = strings.TrimSpace(v)
		}
	}
	return out
}

func unescape(s string) (string, error) {
	return url.QueryUnescape(s)
}
