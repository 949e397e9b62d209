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

// Package codes defines the canonical span status codes.
package codes // import "go.opentelemetry.io/otelcore/codes"

// Code is a span status code.
type Code uint32

const (
	// Unset is the default status of a span.
	Unset Code = iota
	// Error indicates the operation contains an error.
	Error
	// Ok indicates the operation completed successfully.
	Ok
)

// String returns the Code's string representation.
func (c Code) String() string {
	switch c {
	case Error:
		return "Error"
	case Ok:
		return "Ok"
	default:
		return "Unset"
	}
}
