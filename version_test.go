// Copyright 2025 Contriboss
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

package matchspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	valid := []string{
		"1",
		"1.2.3",
		"0.9",
		"2!1.0",
		"1.0a",
		"1.0.post1",
		"1.2-rc1",
		"1.2_5",
		"1.10.0",
	}
	for _, input := range valid {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			v, err := ParseVersion(input)
			require.NoError(t, err)
			assert.Equal(t, input, v.String())
		})
	}

	invalid := []string{
		"",
		"   ",
		"1..2",
		".1.0",
		"1.0.",
		"1.0+x",
		"a!1.0",
		"1.0 beta",
	}
	for _, input := range invalid {
		t.Run("invalid "+input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseVersion(input)
			assert.Error(t, err)
		})
	}
}

func TestVersionSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b   string
		expect int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.0.0", 0},
		{"1.0", "1.0.0.0", 0},
		{"1.0A", "1.0a", 0},
		{"0.9", "1.0", -1},
		{"1.9", "1.10", -1},
		{"1.0a", "1.0", -1},
		{"1.0a", "1.0.0", -1},
		{"1.0a", "1.0dev", -1},
		{"1.0a", "1.1", -1},
		{"1.0alpha", "1.0beta", -1},
		{"1.0alpha", "1.0", -1},
		{"1.0.post1", "1.0.post2", -1},
		{"1.2-rc1", "1.2.rc1", 0},
		{"1.0", "2!0.1", -1},
		{"1!2.0", "2!1.0", -1},
		{"2.0", "1.9.9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			t.Parallel()
			a := MustParseVersion(tt.a)
			b := MustParseVersion(tt.b)

			switch tt.expect {
			case 0:
				assert.Zero(t, a.Sort(b))
				assert.Zero(t, b.Sort(a))
			case -1:
				assert.Negative(t, a.Sort(b))
				assert.Positive(t, b.Sort(a))
			case 1:
				assert.Positive(t, a.Sort(b))
				assert.Negative(t, b.Sort(a))
			}
		})
	}
}

func TestVersionCanonicalKey(t *testing.T) {
	t.Parallel()

	// Spellings that compare equal must share a canonical key, so content
	// hashes stay consistent with equality.
	assert.Equal(t,
		MustParseVersion("1.0").canonicalKey(),
		MustParseVersion("1.0.0").canonicalKey(),
	)
	assert.Equal(t,
		MustParseVersion("1.2-rc1").canonicalKey(),
		MustParseVersion("1.2.rc1").canonicalKey(),
	)
	assert.NotEqual(t,
		MustParseVersion("1.0").canonicalKey(),
		MustParseVersion("1.0.1").canonicalKey(),
	)
	assert.NotEqual(t,
		MustParseVersion("1.0").canonicalKey(),
		MustParseVersion("1!1.0").canonicalKey(),
	)
}

func TestMustParseVersionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParseVersion("not a version!") })
}

func TestBuildNumberSort(t *testing.T) {
	t.Parallel()

	assert.Negative(t, BuildNumber(0).Sort(BuildNumber(1)))
	assert.Positive(t, BuildNumber(2).Sort(BuildNumber(1)))
	assert.Zero(t, BuildNumber(3).Sort(BuildNumber(3)))
	assert.Equal(t, "7", BuildNumber(7).String())
}
