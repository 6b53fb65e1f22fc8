// Copyright 2025 The vanille-type Authors
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

//go:build !integration

package validators

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vtype "github.com/AlexisTessier/vanille-type"
)

func TestUUID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "uuid value", value: uuid.New(), want: true},
		{name: "canonical string", value: "f47ac10b-58cc-4372-a567-0e02b2c3d479", want: true},
		{name: "urn string", value: "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479", want: true},
		{name: "too short", value: "f47ac10b-58cc", want: false},
		{name: "empty", value: "", want: false},
		{name: "bytes", value: []byte("f47ac10b-58cc-4372-a567-0e02b2c3d479"), want: false},
		{name: "nil", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UUID.Is(tt.value))
		})
	}
}

func TestSemVer(t *testing.T) {
	t.Parallel()

	assert.True(t, SemVer.Is("1.2.3"))
	assert.True(t, SemVer.Is("v2.0.0-rc.1"))
	assert.True(t, SemVer.Is(semver.MustParse("0.1.0")))
	assert.False(t, SemVer.Is("one"))
	assert.False(t, SemVer.Is((*semver.Version)(nil)))
	assert.False(t, SemVer.Is(1))
}

func TestSemVerRange(t *testing.T) {
	t.Parallel()

	V1 := MustSemVerRange("^1")
	assert.Equal(t, "SemVerRange(^1)", V1.String())

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "in range", value: "1.4.0"},
		{name: "lower bound", value: "1.0.0"},
		{
			name:  "above range",
			value: "2.0.0",
			want:  "Value \"2.0.0\" is not of a valid type:\n\t0) It doesn't match the validator SemVerRange(^1) - 2.0.0 does not satisfy ^1",
		},
		{
			name:  "not a version",
			value: 1,
			want:  "Value 1 is not of a valid type:\n\t0) It doesn't match the validator SemVerRange(^1) - 1 is not a version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := V1.Check(tt.value)
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, vtype.ErrMismatch)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestSemVerRange_InvalidConstraint(t *testing.T) {
	t.Parallel()

	_, err := SemVerRange("not a constraint")
	require.Error(t, err)
	assert.Panics(t, func() { MustSemVerRange(">>1") })
}
