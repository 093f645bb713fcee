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
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Range represents a subset of a totally ordered scalar domain as sorted,
// disjoint intervals. This representation efficiently handles common
// constraints like ranges and unions of ranges.
//
// Intervals are stored in normalized form: sorted, non-empty, non-overlapping,
// and with no adjacent intervals that could be merged. This ensures efficient
// set operations and canonical structural equality.
//
// Ranges are immutable – all operations return new instances.
//
// Example:
//
//	r1 := RangeBetween(MustParseVersion("1.0"), true, MustParseVersion("2.0"), false)
//	r2 := RangeAtLeast(MustParseVersion("1.5"))
//	both := r1.Intersection(r2) // >=1.5, <2.0
type Range[T Ordered[T]] struct {
	intervals []interval[T]
}

// newRange creates a Range from intervals.
// The intervals are automatically normalized (sorted, merged, deduplicated).
func newRange[T Ordered[T]](intervals []interval[T]) Range[T] {
	return Range[T]{intervals: normalizeIntervals(intervals)}
}

// rangeFromBounds creates a Range from single lower and upper bounds.
func rangeFromBounds[T Ordered[T]](lower, upper bound[T]) Range[T] {
	if iv, ok := newInterval(lower, upper); ok {
		return Range[T]{intervals: []interval[T]{iv}}
	}
	return Range[T]{}
}

// EmptyRange returns a Range containing no values.
func EmptyRange[T Ordered[T]]() Range[T] {
	return Range[T]{}
}

// FullRange returns a Range containing all values of the domain.
func FullRange[T Ordered[T]]() Range[T] {
	return Range[T]{
		intervals: []interval[T]{
			{
				lower: negativeInfinityBound[T](),
				upper: positiveInfinityBound[T](),
			},
		},
	}
}

// SingletonRange returns a Range containing exactly one value.
func SingletonRange[T Ordered[T]](value T) Range[T] {
	return rangeFromBounds(finiteBound(value, true), finiteBound(value, true))
}

// RangeAtLeast returns the Range of values >= value.
func RangeAtLeast[T Ordered[T]](value T) Range[T] {
	return rangeFromBounds(finiteBound(value, true), positiveInfinityBound[T]())
}

// RangeGreaterThan returns the Range of values > value.
func RangeGreaterThan[T Ordered[T]](value T) Range[T] {
	return rangeFromBounds(finiteBound(value, false), positiveInfinityBound[T]())
}

// RangeAtMost returns the Range of values <= value.
func RangeAtMost[T Ordered[T]](value T) Range[T] {
	return rangeFromBounds(negativeInfinityBound[T](), finiteBound(value, true))
}

// RangeLessThan returns the Range of values < value.
func RangeLessThan[T Ordered[T]](value T) Range[T] {
	return rangeFromBounds(negativeInfinityBound[T](), finiteBound(value, false))
}

// RangeBetween returns the Range of values between lower and upper, with
// each end included or excluded according to the inclusivity flags.
func RangeBetween[T Ordered[T]](lower T, lowerInclusive bool, upper T, upperInclusive bool) Range[T] {
	return rangeFromBounds(finiteBound(lower, lowerInclusive), finiteBound(upper, upperInclusive))
}

// cloneIntervals creates a copy of the intervals slice for safe mutation.
func (r Range[T]) cloneIntervals() []interval[T] {
	if len(r.intervals) == 0 {
		return nil
	}
	cloned := make([]interval[T], len(r.intervals))
	copy(cloned, r.intervals)
	return cloned
}

// Union returns the Range of values in either this range or the other.
func (r Range[T]) Union(other Range[T]) Range[T] {
	intervals := r.cloneIntervals()
	intervals = append(intervals, other.intervals...)
	return newRange(intervals)
}

// Intersection returns the Range of values in both this range and the other.
func (r Range[T]) Intersection(other Range[T]) Range[T] {
	if len(r.intervals) == 0 || len(other.intervals) == 0 {
		return Range[T]{}
	}

	result := make([]interval[T], 0, len(r.intervals))
	i, j := 0, 0
	for i < len(r.intervals) && j < len(other.intervals) {
		if iv, ok := intersectInterval(r.intervals[i], other.intervals[j]); ok {
			result = append(result, iv)
		}

		if compareUpper(r.intervals[i].upper, other.intervals[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}

	return newRange(result)
}

// Complement returns the Range of values NOT in this range.
func (r Range[T]) Complement() Range[T] {
	if len(r.intervals) == 0 {
		return FullRange[T]()
	}

	gaps := make([]interval[T], 0, len(r.intervals)+1)
	currentLower := negativeInfinityBound[T]()

	for _, iv := range r.intervals {
		gapUpper := iv.complementUpperBound()
		if gap, ok := newInterval(currentLower, gapUpper); ok {
			gaps = append(gaps, gap)
		}
		currentLower = iv.complementLowerBound()
	}

	if tail, ok := newInterval(currentLower, positiveInfinityBound[T]()); ok {
		gaps = append(gaps, tail)
	}

	return newRange(gaps)
}

// Contains tests if a specific value is in the range.
func (r Range[T]) Contains(value T) bool {
	for _, iv := range r.intervals {
		if iv.contains(value) {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the range contains no values.
func (r Range[T]) IsEmpty() bool {
	return len(r.intervals) == 0
}

// isDisjunction returns true if the range renders as multiple alternatives.
func (r Range[T]) isDisjunction() bool {
	return len(r.intervals) > 1
}

// IsFull returns true if the range contains every value of the domain.
func (r Range[T]) IsFull() bool {
	return len(r.intervals) == 1 &&
		r.intervals[0].lower.isNegInfinity() &&
		r.intervals[0].upper.isPosInfinity()
}

// Equal reports whether two ranges contain exactly the same values.
// Both ranges are normalized, so structural comparison suffices.
func (r Range[T]) Equal(other Range[T]) bool {
	return r.Compare(other) == 0
}

// Compare defines a total order over ranges: intervals are compared
// pairwise by lower then upper bound, and a prefix sorts before its
// extensions. The order carries no domain meaning; it exists so that
// containing values can canonicalize deterministically.
func (r Range[T]) Compare(other Range[T]) int {
	n := len(r.intervals)
	if len(other.intervals) < n {
		n = len(other.intervals)
	}

	for i := 0; i < n; i++ {
		if cmp := compareLower(r.intervals[i].lower, other.intervals[i].lower); cmp != 0 {
			return cmp
		}
		if cmp := compareUpper(r.intervals[i].upper, other.intervals[i].upper); cmp != 0 {
			return cmp
		}
	}

	switch {
	case len(r.intervals) < len(other.intervals):
		return -1
	case len(r.intervals) > len(other.intervals):
		return 1
	default:
		return 0
	}
}

// hashInto feeds the canonical content of the range into a digest.
// Versions spelled differently but comparing equal feed identical bytes.
func (r Range[T]) hashInto(d *xxhash.Digest) {
	for _, iv := range r.intervals {
		hashBound(d, iv.lower)
		hashBound(d, iv.upper)
	}
	d.Write([]byte{0x1e})
}

func hashBound[T Ordered[T]](d *xxhash.Digest, b bound[T]) {
	marker := byte(b.infinite + 2)
	if b.inclusive {
		marker |= 0x10
	}
	d.Write([]byte{marker})
	if b.isFinite() {
		d.WriteString(scalarKey(b.value))
	}
	d.Write([]byte{0x1f})
}

// String returns a human-readable representation of the range.
// Empty ranges display as "∅", full ranges as "*", and intervals use
// standard comparison operators.
func (r Range[T]) String() string {
	if len(r.intervals) == 0 {
		return "∅"
	}

	if len(r.intervals) == 1 {
		return intervalToString(r.intervals[0])
	}

	parts := make([]string, len(r.intervals))
	for i, iv := range r.intervals {
		parts[i] = intervalToString(iv)
	}
	return strings.Join(parts, " || ")
}

// intervalToString converts a single interval to its string representation.
func intervalToString[T Ordered[T]](iv interval[T]) string {
	if iv.lower.isNegInfinity() && iv.upper.isPosInfinity() {
		return "*"
	}

	if iv.lower.isFinite() && iv.upper.isFinite() {
		if iv.lower.value.Sort(iv.upper.value) == 0 &&
			iv.lower.inclusive && iv.upper.inclusive {
			return fmt.Sprintf("==%s", iv.lower.value)
		}
	}

	var parts []string

	if iv.lower.isFinite() {
		if iv.lower.inclusive {
			parts = append(parts, fmt.Sprintf(">=%s", iv.lower.value))
		} else {
			parts = append(parts, fmt.Sprintf(">%s", iv.lower.value))
		}
	}

	if iv.upper.isFinite() {
		if iv.upper.inclusive {
			parts = append(parts, fmt.Sprintf("<=%s", iv.upper.value))
		} else {
			parts = append(parts, fmt.Sprintf("<%s", iv.upper.value))
		}
	}

	if len(parts) == 0 {
		return "*"
	}

	return strings.Join(parts, ", ")
}
