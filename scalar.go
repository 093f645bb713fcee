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

import "strconv"

// Ordered is the constraint satisfied by scalar domains usable in a Range.
// Any totally ordered value type with a string representation qualifies.
//
// Built-in implementations:
//   - Version: dotted package versions with numeric and alphanumeric segments
//   - BuildNumber: non-negative build counters
//
// Example custom scalar:
//
//	type Timestamp int64
//
//	func (t Timestamp) Sort(other Timestamp) int {
//	    return cmp.Compare(t, other)
//	}
//
//	func (t Timestamp) String() string {
//	    return time.Unix(int64(t), 0).Format(time.RFC3339)
//	}
type Ordered[T any] interface {
	// Sort compares this value to another.
	// Returns:
	//   - negative if this value < other
	//   - zero if this value == other
	//   - positive if this value > other
	Sort(other T) int

	// String returns a human-readable representation of the value.
	String() string
}

// canonicalKeyer is an optional interface for scalars whose String form is not
// canonical under Sort (e.g. "1.0" and "1.0.0" compare equal). Scalars that
// implement it feed the canonical key into content hashes instead of String.
type canonicalKeyer interface {
	canonicalKey() string
}

// scalarKey returns the canonical hash key for a scalar value.
func scalarKey[T Ordered[T]](v T) string {
	if ck, ok := any(v).(canonicalKeyer); ok {
		return ck.canonicalKey()
	}
	return v.String()
}

// BuildNumber is the monotonically increasing counter a package publisher
// attaches to successive builds of the same version.
type BuildNumber int

// Sort implements Ordered by numeric comparison.
func (b BuildNumber) Sort(other BuildNumber) int {
	switch {
	case b < other:
		return -1
	case b > other:
		return 1
	default:
		return 0
	}
}

// String returns the decimal representation of the build number.
func (b BuildNumber) String() string {
	return strconv.Itoa(int(b))
}

var (
	_ Ordered[BuildNumber] = BuildNumber(0)
)
