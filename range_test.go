// Copyright 2024 The University of Queensland
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

func versionsBetween(t *testing.T, lower, upper string) Range[Version] {
	t.Helper()
	return RangeBetween(MustParseVersion(lower), true, MustParseVersion(upper), false)
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       Range[Version]
		version string
		expect  bool
	}{
		{"at least includes bound", RangeAtLeast(MustParseVersion("1.0")), "1.0", true},
		{"at least excludes below", RangeAtLeast(MustParseVersion("1.0")), "0.9.9", false},
		{"greater than excludes bound", RangeGreaterThan(MustParseVersion("1.0")), "1.0", false},
		{"greater than spelled differently", RangeGreaterThan(MustParseVersion("1.0")), "1.0.0", false},
		{"at most includes bound", RangeAtMost(MustParseVersion("2.0")), "2.0", true},
		{"less than excludes bound", RangeLessThan(MustParseVersion("2.0")), "2.0", false},
		{"less than includes prerelease", RangeLessThan(MustParseVersion("1.0")), "1.0a", true},
		{"at least excludes prerelease", RangeAtLeast(MustParseVersion("1.0")), "1.0a", false},
		{"singleton matches", SingletonRange(MustParseVersion("1.5.0")), "1.5.0", true},
		{"singleton rejects", SingletonRange(MustParseVersion("1.5.0")), "1.5.1", false},
		{"full matches anything", FullRange[Version](), "0.0.1", true},
		{"empty matches nothing", EmptyRange[Version](), "1.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, tt.r.Contains(MustParseVersion(tt.version)))
		})
	}
}

func TestRangeIntersection(t *testing.T) {
	t.Parallel()

	a := versionsBetween(t, "1.0", "2.0")
	b := versionsBetween(t, "1.5", "3.0")

	got := a.Intersection(b)
	require.True(t, got.Equal(versionsBetween(t, "1.5", "2.0")))

	assert.True(t, got.Contains(MustParseVersion("1.7")))
	assert.False(t, got.Contains(MustParseVersion("1.2")))
	assert.False(t, got.Contains(MustParseVersion("2.0")))

	// Commutative.
	assert.True(t, got.Equal(b.Intersection(a)))

	// Disjoint operands produce the empty range.
	c := RangeAtLeast(MustParseVersion("4.0"))
	assert.True(t, a.Intersection(c).IsEmpty())

	// Identity and absorbing elements.
	assert.True(t, a.Intersection(FullRange[Version]()).Equal(a))
	assert.True(t, a.Intersection(EmptyRange[Version]()).IsEmpty())
}

func TestRangeUnion(t *testing.T) {
	t.Parallel()

	a := versionsBetween(t, "1.0", "2.0")
	b := versionsBetween(t, "1.5", "3.0")

	union := a.Union(b)
	assert.True(t, union.Equal(versionsBetween(t, "1.0", "3.0")))

	// Non-touching operands stay as separate intervals.
	c := RangeAtLeast(MustParseVersion("4.0"))
	split := a.Union(c)
	assert.True(t, split.Contains(MustParseVersion("1.5")))
	assert.False(t, split.Contains(MustParseVersion("3.5")))
	assert.True(t, split.Contains(MustParseVersion("9.9")))
	assert.Equal(t, ">=1.0, <2.0 || >=4.0", split.String())
}

func TestRangeComplement(t *testing.T) {
	t.Parallel()

	r := versionsBetween(t, "1.0", "2.0")
	comp := r.Complement()

	assert.False(t, comp.Contains(MustParseVersion("1.5")))
	assert.True(t, comp.Contains(MustParseVersion("0.5")))
	assert.True(t, comp.Contains(MustParseVersion("2.0")))

	// Double complement restores the original range exactly.
	assert.True(t, comp.Complement().Equal(r))

	// Complement of the extremes.
	assert.True(t, EmptyRange[Version]().Complement().IsFull())
	assert.True(t, FullRange[Version]().Complement().IsEmpty())

	// A range and its complement partition the domain.
	assert.True(t, r.Intersection(comp).IsEmpty())
}

func TestRangeCompare(t *testing.T) {
	t.Parallel()

	a := versionsBetween(t, "1.0", "2.0")
	b := versionsBetween(t, "1.5", "3.0")

	assert.Zero(t, a.Compare(versionsBetween(t, "1.0", "2.0")))
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))

	// Empty sorts before anything non-empty, a prefix before its extension.
	assert.Negative(t, EmptyRange[Version]().Compare(a))
	assert.Negative(t, a.Compare(a.Union(RangeAtLeast(MustParseVersion("5.0")))))

	// Spelling differences that compare equal do not affect the order.
	assert.Zero(t, a.Compare(RangeBetween(
		MustParseVersion("1.0.0"), true, MustParseVersion("2.0.0"), false,
	)))
}

func TestRangeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		r      Range[Version]
		expect string
	}{
		{"empty", EmptyRange[Version](), "∅"},
		{"full", FullRange[Version](), "*"},
		{"singleton", SingletonRange(MustParseVersion("1.5.0")), "==1.5.0"},
		{"bounded", versionsBetween(t, "1.0", "2.0"), ">=1.0, <2.0"},
		{"at least", RangeAtLeast(MustParseVersion("1.0")), ">=1.0"},
		{"less than", RangeLessThan(MustParseVersion("2.0")), "<2.0"},
		{"exclusive lower", RangeGreaterThan(MustParseVersion("1.0")), ">1.0"},
		{"at most", RangeAtMost(MustParseVersion("2.0")), "<=2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, tt.r.String())
		})
	}
}

func TestRangeBuildNumbers(t *testing.T) {
	t.Parallel()

	r := SingletonRange(BuildNumber(3))
	assert.True(t, r.Contains(BuildNumber(3)))
	assert.False(t, r.Contains(BuildNumber(2)))
	assert.Equal(t, "==3", r.String())

	comp := r.Complement()
	assert.True(t, comp.Contains(BuildNumber(2)))
	assert.True(t, comp.Contains(BuildNumber(4)))
	assert.False(t, comp.Contains(BuildNumber(3)))
	assert.Equal(t, "<3 || >3", comp.String())
}
