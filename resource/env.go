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

package resource // import "go.opentelemetry.io/otelcore/resource"

import (
	"github.com/google/uuid"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/sdk/internal/env"
)

const (
	telemetrySDKName     = "opentelemetry"
	telemetrySDKLanguage = "go"
	telemetrySDKVersion  = "1.0.0-otelcore"
)

// defaultResource assembles the telemetry.sdk.* identity attributes, an
// OTEL_SERVICE_NAME (or service.name drawn from OTEL_RESOURCE_ATTRIBUTES),
// and a fallback random service.instance.id, matching the precedence the
// environment-variable specification uses: explicit service name wins over
// a generic resource attribute, and both win over the "unknown_service"
// default.
func defaultResource() *Resource {
	kvs := []attribute.KeyValue{
		attribute.String("telemetry.sdk.name", telemetrySDKName),
		attribute.String("telemetry.sdk.language", telemetrySDKLanguage),
		attribute.String("telemetry.sdk.version", telemetrySDKVersion),
	}

	attrs := env.ResourceAttributesEnv()
	serviceName, ok := attrs["service.name"]
	if name := env.StringEnv("OTEL_SERVICE_NAME", ""); name != "" {
		serviceName, ok = name, true
	}
	if !ok || serviceName == "" {
		serviceName = "unknown_service:go"
	}
	kvs = append(kvs, attribute.String("service.name", serviceName))

	for k, v := range attrs {
		if k == "service.name" {
			continue
		}
		kvs = append(kvs, attribute.String(k, v))
	}

	if _, hasInstance := attrs["service.instance.id"]; !hasInstance {
		kvs = append(kvs, attribute.String("service.instance.id", uuid.NewString()))
	}

	return &Resource{attrs: attribute.NewSet(kvs...)}
}
