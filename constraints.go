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

// Package matchspec implements a boolean algebra over package-version
// constraints for use as the version-set primitive of a PubGrub-style
// dependency solver.
//
// A constraint is held in disjunctive normal form: an OR of AND groups, each
// group constraining a package's version and build number with an interval
// range. The algebra supports union, intersection, complement and membership
// without ever enumerating concrete versions, and canonicalizes its
// representation so that equal sets are structurally equal.
package matchspec

import (
	"iter"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MatchSpecConstraints implements VersionSet as a disjunction of
// MatchSpecElement AND groups.
//
// Well-formed values maintain three invariants:
//   - no group matches nothing (empty groups are pruned during construction)
//   - no two groups are equal (set semantics over groups)
//   - groups are sorted by their total order, so equal sets are structurally
//     equal no matter which sequence of operations produced them
//
// An empty group list denotes the empty set; a single group matching anything
// denotes the universal set. Values are immutable once constructed.
type MatchSpecConstraints struct {
	groups []MatchSpecElement
}

// EmptyConstraints returns the constraint set matching no package builds.
func EmptyConstraints() MatchSpecConstraints {
	return MatchSpecConstraints{}
}

// FullConstraints returns the constraint set matching every package build.
func FullConstraints() MatchSpecConstraints {
	return MatchSpecConstraints{groups: []MatchSpecElement{anyElement()}}
}

// SingletonConstraints returns the constraint set matching exactly the given
// record's version and build number.
func SingletonConstraints(record PackageRecord) MatchSpecConstraints {
	return MatchSpecConstraints{
		groups: []MatchSpecElement{
			{
				version:     SingletonRange(record.Version),
				buildNumber: SingletonRange(record.BuildNumber),
			},
		},
	}
}

// Empty returns a VersionSet matching no package builds.
func (c MatchSpecConstraints) Empty() VersionSet {
	return EmptyConstraints()
}

// Full returns a VersionSet matching every package build.
func (c MatchSpecConstraints) Full() VersionSet {
	return FullConstraints()
}

// Singleton returns a VersionSet matching exactly one package build.
func (c MatchSpecConstraints) Singleton(record PackageRecord) VersionSet {
	return SingletonConstraints(record)
}

// Complement returns the set of builds NOT in this set.
//
// NOT(g1 OR … OR gn) expands by De Morgan to NOT(g1) AND … AND NOT(gn).
// Each NOT(gi) is a disjunction of at most two alternatives, one per
// negated field with the other field left unconstrained. The conjunction
// across groups is brought back into disjunctive normal form by taking the
// cartesian product of the per-group alternative lists and intersecting each
// combination into a candidate output group.
//
// The expansion is exponential in the number of groups. Conjunctions produced
// by real requirements and solver operations stay small, and exactness of the
// algebra takes priority over asymptotics here.
func (c MatchSpecConstraints) Complement() VersionSet {
	if len(c.groups) == 0 {
		return FullConstraints()
	}

	alternatives := make([][]MatchSpecElement, 0, len(c.groups))
	for _, group := range c.groups {
		alts := make([]MatchSpecElement, 0, 2)
		if vc := group.version.Complement(); !vc.IsEmpty() {
			alts = append(alts, MatchSpecElement{
				version:     vc,
				buildNumber: FullRange[BuildNumber](),
			})
		}
		if bc := group.buildNumber.Complement(); !bc.IsEmpty() {
			alts = append(alts, MatchSpecElement{
				version:     FullRange[Version](),
				buildNumber: bc,
			})
		}
		// A group whose negation contributes no alternative makes the whole
		// conjunction empty; cartesianProduct yields nothing in that case.
		alternatives = append(alternatives, alts)
	}

	var groups []MatchSpecElement
	for pick := range cartesianProduct(alternatives) {
		group := pick[0]
		for _, alt := range pick[1:] {
			group = group.intersection(alt)
			if group.isNone() {
				break
			}
		}
		if group.isNone() {
			continue
		}
		if group.isAny() {
			return FullConstraints()
		}
		groups = append(groups, group)
	}

	return MatchSpecConstraints{groups: canonicalGroups(groups)}
}

// Intersection returns the set of builds in both this set and the other.
//
// AND distributes over OR: every pair of groups from the two operands is
// intersected, empty results are pruned, and the survivors are deduplicated
// and canonically ordered.
func (c MatchSpecConstraints) Intersection(other VersionSet) VersionSet {
	o := asConstraints(other)

	groups := make([]MatchSpecElement, 0, len(c.groups))
	for _, a := range c.groups {
		for _, b := range o.groups {
			group := a.intersection(b)
			if group.isNone() {
				continue
			}
			if group.isAny() {
				return FullConstraints()
			}
			groups = append(groups, group)
		}
	}

	return MatchSpecConstraints{groups: canonicalGroups(groups)}
}

// Union returns the set of builds in either this set or the other.
//
// Union is derived rather than primitive: x ∪ y = ¬(¬x ∩ ¬y). This anchors
// its correctness to Complement and Intersection instead of a third
// independent algorithm.
func (c MatchSpecConstraints) Union(other VersionSet) VersionSet {
	return c.Complement().Intersection(other.Complement()).Complement()
}

// Contains tests if a specific package build is in the set.
func (c MatchSpecConstraints) Contains(record PackageRecord) bool {
	for _, group := range c.groups {
		if group.contains(record) {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the set matches no builds.
// Empty groups are pruned during construction, so any remaining group is
// satisfiable.
func (c MatchSpecConstraints) IsEmpty() bool {
	return len(c.groups) == 0
}

// IsSubset returns true if all builds in this set are also in the other set.
func (c MatchSpecConstraints) IsSubset(other VersionSet) bool {
	return c.Intersection(other.Complement()).IsEmpty()
}

// IsDisjoint returns true if this set and the other set have no builds in common.
func (c MatchSpecConstraints) IsDisjoint(other VersionSet) bool {
	return c.Intersection(other).IsEmpty()
}

// Equal reports whether this set and the other are the same set of builds.
// Groups are kept canonically ordered, so pairwise structural comparison
// suffices.
func (c MatchSpecConstraints) Equal(other VersionSet) bool {
	o := asConstraints(other)
	if len(c.groups) != len(o.groups) {
		return false
	}
	for i := range c.groups {
		if !c.groups[i].equal(o.groups[i]) {
			return false
		}
	}
	return true
}

// Hash returns a deterministic content hash consistent with Equal.
func (c MatchSpecConstraints) Hash() uint64 {
	d := xxhash.New()
	for _, group := range c.groups {
		group.hashInto(d)
	}
	return d.Sum64()
}

// Groups returns an iterator over the constraint's AND groups in canonical
// order. This enables using range-over-function syntax:
//
//	for group := range constraints.Groups() {
//	    fmt.Println(group)
//	}
func (c MatchSpecConstraints) Groups() iter.Seq[MatchSpecElement] {
	return slices.Values(c.groups)
}

// String returns a human-readable representation of the set.
// Empty sets display as "∅", universal sets as "*", and groups are joined
// with " || ".
func (c MatchSpecConstraints) String() string {
	if len(c.groups) == 0 {
		return "∅"
	}

	if len(c.groups) == 1 {
		return c.groups[0].String()
	}

	parts := make([]string, len(c.groups))
	for i, group := range c.groups {
		parts[i] = group.String()
	}
	return strings.Join(parts, " || ")
}

// canonicalGroups sorts groups by their total order and drops duplicates.
// Compare is collision-proof (it returns 0 only for structurally equal
// groups), so sorting then deduplicating adjacent entries yields the
// canonical form.
func canonicalGroups(groups []MatchSpecElement) []MatchSpecElement {
	if len(groups) == 0 {
		return nil
	}

	slices.SortFunc(groups, MatchSpecElement.compare)

	out := groups[:1]
	for _, group := range groups[1:] {
		if !group.equal(out[len(out)-1]) {
			out = append(out, group)
		}
	}
	return slices.Clip(out)
}

// cartesianProduct yields every way of picking one element from each choice
// list. It yields nothing if any choice list is empty, or if there are no
// choice lists at all. The yielded slice is freshly allocated per combination.
func cartesianProduct[E any](choices [][]E) iter.Seq[[]E] {
	return func(yield func([]E) bool) {
		if len(choices) == 0 {
			return
		}
		for _, alternatives := range choices {
			if len(alternatives) == 0 {
				return
			}
		}

		idx := make([]int, len(choices))
		for {
			pick := make([]E, len(choices))
			for i, j := range idx {
				pick[i] = choices[i][j]
			}
			if !yield(pick) {
				return
			}

			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(choices[i]) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// asConstraints converts a VersionSet to MatchSpecConstraints or panics.
// This is used internally for type assertion with a helpful error message.
func asConstraints(set VersionSet) MatchSpecConstraints {
	if set == nil {
		return MatchSpecConstraints{}
	}

	if c, ok := set.(MatchSpecConstraints); ok {
		return c
	}

	// Fallback: if the set behaves as empty, use that knowledge.
	if set.IsEmpty() {
		return MatchSpecConstraints{}
	}

	panic("unsupported VersionSet implementation")
}

var (
	_ VersionSet = MatchSpecConstraints{}
)
