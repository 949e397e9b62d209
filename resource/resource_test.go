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

package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
)

func TestMergeOverridesOnKeyCollision(t *testing.T) {
	a := New("", attribute.String("k", "a"), attribute.String("only-a", "1"))
	b := New("", attribute.String("k", "b"))

	merged, err := Merge(a, b)
	require.NoError(t, err)

	got := merged.Set()
	v, ok := got.Value("k")
	require.True(t, ok)
	assert.Equal(t, "b", v.AsString())

	_, ok = got.Value("only-a")
	assert.True(t, ok)
}

func TestMergeReportsSchemaURLConflict(t *testing.T) {
	a := New("https://a")
	b := New("https://b")

	merged, err := Merge(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaURLConflict))
	assert.Equal(t, "https://b", merged.SchemaURL())
}

func TestMergeNilIsIdentity(t *testing.T) {
	a := New("", attribute.Bool("x", true))
	merged, err := Merge(nil, a)
	require.NoError(t, err)
	assert.Equal(t, a, merged)

	merged, err = Merge(a, nil)
	require.NoError(t, err)
	assert.Equal(t, a, merged)
}

func TestStringIsSortedAndStable(t *testing.T) {
	r := New("", attribute.String("b", "2"), attribute.String("a", "1"))
	assert.Equal(t, "a=1,b=2", r.String())
}

func TestNilResourceAccessorsAreSafe(t *testing.T) {
	var r *Resource
	assert.Nil(t, r.Attributes())
	assert.Equal(t, "", r.SchemaURL())
	assert.Equal(t, "", r.String())
}
