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

// bound represents either a lower or upper bound of a scalar interval.
// Bounds can be finite (with a specific value), or infinite (unbounded).
//
// The `infinite` field uses sentinel values:
//   - boundNegativeInfinity (-1): represents -∞ (no lower limit)
//   - boundFinite (0): represents a specific value
//   - boundPositiveInfinity (1): represents +∞ (no upper limit)
//
// The `inclusive` field determines whether the bound includes the value itself.
// For example, ">=1.0.0" has inclusive=true, while ">1.0.0" has inclusive=false.
type bound[T Ordered[T]] struct {
	value     T
	inclusive bool
	infinite  int
}

const (
	boundNegativeInfinity = -1
	boundFinite           = 0
	boundPositiveInfinity = 1
)

// finiteBound creates a bound at a specific value.
func finiteBound[T Ordered[T]](value T, inclusive bool) bound[T] {
	return bound[T]{value: value, inclusive: inclusive}
}

// negativeInfinityBound returns a bound representing -∞.
func negativeInfinityBound[T Ordered[T]]() bound[T] {
	return bound[T]{infinite: boundNegativeInfinity, inclusive: true}
}

// positiveInfinityBound returns a bound representing +∞.
func positiveInfinityBound[T Ordered[T]]() bound[T] {
	return bound[T]{infinite: boundPositiveInfinity, inclusive: true}
}

// isNegInfinity returns true if this bound represents -∞.
func (b bound[T]) isNegInfinity() bool {
	return b.infinite == boundNegativeInfinity
}

// isPosInfinity returns true if this bound represents +∞.
func (b bound[T]) isPosInfinity() bool {
	return b.infinite == boundPositiveInfinity
}

// isFinite returns true if this bound represents a specific value.
func (b bound[T]) isFinite() bool {
	return b.infinite == boundFinite
}

// compareLower compares two lower bounds.
// Returns negative if a < b, zero if equal, positive if a > b.
// For lower bounds: inclusive comes before exclusive when values are equal.
func compareLower[T Ordered[T]](a, b bound[T]) int {
	switch {
	case a.infinite == boundNegativeInfinity && b.infinite == boundNegativeInfinity:
		return 0
	case a.infinite == boundNegativeInfinity:
		return -1
	case b.infinite == boundNegativeInfinity:
		return 1
	case a.infinite == boundPositiveInfinity && b.infinite == boundPositiveInfinity:
		return 0
	case a.infinite == boundPositiveInfinity:
		return 1
	case b.infinite == boundPositiveInfinity:
		return -1
	default:
		if cmp := a.value.Sort(b.value); cmp != 0 {
			return cmp
		}
		// For lower bounds: inclusive comes before exclusive
		if a.inclusive == b.inclusive {
			return 0
		}
		if a.inclusive {
			return -1
		}
		return 1
	}
}

// compareUpper compares two upper bounds.
// Returns negative if a < b, zero if equal, positive if a > b.
// For upper bounds: inclusive comes after exclusive when values are equal.
func compareUpper[T Ordered[T]](a, b bound[T]) int {
	switch {
	case a.infinite == boundPositiveInfinity && b.infinite == boundPositiveInfinity:
		return 0
	case a.infinite == boundPositiveInfinity:
		return 1
	case b.infinite == boundPositiveInfinity:
		return -1
	case a.infinite == boundNegativeInfinity && b.infinite == boundNegativeInfinity:
		return 0
	case a.infinite == boundNegativeInfinity:
		return -1
	case b.infinite == boundNegativeInfinity:
		return 1
	default:
		if cmp := a.value.Sort(b.value); cmp != 0 {
			return cmp
		}
		// For upper bounds: inclusive comes after exclusive
		if a.inclusive == b.inclusive {
			return 0
		}
		if a.inclusive {
			return 1
		}
		return -1
	}
}
