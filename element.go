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
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MatchSpecElement is a single AND group of a MatchSpecConstraints value:
// a record matches the element when its version falls in the version range
// AND its build number falls in the build-number range.
//
// The canonical empty element has both ranges empty; intersection collapses
// to it as soon as either field empties, so two impossible elements always
// compare equal regardless of which field caused the collapse.
type MatchSpecElement struct {
	version     Range[Version]
	buildNumber Range[BuildNumber]
}

// noneElement returns the element that matches nothing.
func noneElement() MatchSpecElement {
	return MatchSpecElement{
		version:     EmptyRange[Version](),
		buildNumber: EmptyRange[BuildNumber](),
	}
}

// anyElement returns the element that matches anything.
func anyElement() MatchSpecElement {
	return MatchSpecElement{
		version:     FullRange[Version](),
		buildNumber: FullRange[BuildNumber](),
	}
}

// intersection returns the field-wise intersection of two elements,
// collapsing to the canonical none element when either field empties.
func (e MatchSpecElement) intersection(other MatchSpecElement) MatchSpecElement {
	version := e.version.Intersection(other.version)
	buildNumber := e.buildNumber.Intersection(other.buildNumber)
	if version.IsEmpty() || buildNumber.IsEmpty() {
		return noneElement()
	}
	return MatchSpecElement{version: version, buildNumber: buildNumber}
}

// contains reports whether the record matches both field constraints.
func (e MatchSpecElement) contains(record PackageRecord) bool {
	return e.version.Contains(record.Version) &&
		e.buildNumber.Contains(record.BuildNumber)
}

// isNone reports whether the element matches nothing.
func (e MatchSpecElement) isNone() bool {
	return e.version.IsEmpty() || e.buildNumber.IsEmpty()
}

// isAny reports whether the element matches everything.
func (e MatchSpecElement) isAny() bool {
	return e.version.IsFull() && e.buildNumber.IsFull()
}

// equal reports structural equality over both fields.
func (e MatchSpecElement) equal(other MatchSpecElement) bool {
	return e.version.Equal(other.version) && e.buildNumber.Equal(other.buildNumber)
}

// compare defines a total order over elements, lexicographic over the two
// range fields. Used to canonicalize group ordering in MatchSpecConstraints.
func (e MatchSpecElement) compare(other MatchSpecElement) int {
	if cmp := e.version.Compare(other.version); cmp != 0 {
		return cmp
	}
	return e.buildNumber.Compare(other.buildNumber)
}

// hashInto feeds the canonical content of the element into a digest.
func (e MatchSpecElement) hashInto(d *xxhash.Digest) {
	e.version.hashInto(d)
	e.buildNumber.hashInto(d)
	d.Write([]byte{0x1d})
}

// String returns a human-readable representation of the element.
// Fields spanning several alternatives are parenthesized so that " || "
// between groups stays unambiguous.
func (e MatchSpecElement) String() string {
	if e.isNone() {
		return "∅"
	}
	if e.isAny() {
		return "*"
	}

	var parts []string
	if !e.version.IsFull() {
		parts = append(parts, "version "+fieldString(e.version))
	}
	if !e.buildNumber.IsFull() {
		parts = append(parts, "build "+fieldString(e.buildNumber))
	}
	return strings.Join(parts, " and ")
}

// fieldString renders one field's range, wrapping disjunctions in parentheses.
func fieldString[T Ordered[T]](r Range[T]) string {
	if r.isDisjunction() {
		return "(" + r.String() + ")"
	}
	return r.String()
}
