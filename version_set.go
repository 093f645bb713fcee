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

// VersionSet represents a set of package builds that can be used in
// dependency constraints. Implementations must be immutable – all operations
// return new instances.
//
// VersionSet enables algebraic operations on constraints, supporting:
//   - Union: combining alternative requirements
//   - Intersection: combining requirements that must hold together
//   - Complement: inverting a requirement during conflict derivation
//   - Subset/Disjoint testing: analyzing constraint relationships
//
// The primary implementation is MatchSpecConstraints, which represents a
// constraint as an OR of version/build-number AND groups.
//
// Example usage:
//
//	older := RangeLessThan(MustParseVersion("2.0"))
//	newer := RangeAtLeast(MustParseVersion("1.5"))
//	a := MatchSpec{Version: &older}.ToConstraints()
//	b := MatchSpec{Version: &newer}.ToConstraints()
//	both := a.Intersection(b) // version >=1.5, <2.0
type VersionSet interface {
	// Empty returns a VersionSet matching no package builds.
	Empty() VersionSet

	// Full returns a VersionSet matching every package build.
	Full() VersionSet

	// Singleton returns a VersionSet matching exactly one package build.
	Singleton(record PackageRecord) VersionSet

	// Union returns the set of builds in either this set or the other.
	Union(other VersionSet) VersionSet

	// Intersection returns the set of builds in both this set and the other.
	Intersection(other VersionSet) VersionSet

	// Complement returns the set of builds NOT in this set.
	Complement() VersionSet

	// Contains tests if a specific package build is in the set.
	Contains(record PackageRecord) bool

	// IsEmpty returns true if the set matches no builds.
	IsEmpty() bool

	// IsSubset returns true if all builds in this set are also in the other set.
	IsSubset(other VersionSet) bool

	// IsDisjoint returns true if this set and the other set have no builds in common.
	IsDisjoint(other VersionSet) bool

	// Equal reports whether this set and the other are the same set of builds.
	Equal(other VersionSet) bool

	// Hash returns a deterministic content hash consistent with Equal.
	Hash() uint64

	// String returns a human-readable representation of the set.
	String() string
}
