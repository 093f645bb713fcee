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
)

// MatchSpec is a structured package requirement: an optional version range
// and an optional exact build number. A nil field leaves that attribute
// unconstrained.
//
// MatchSpec is the boundary between requirement parsing and the constraint
// algebra: whatever front end produces requirements hands them over in this
// shape, and ToConstraints turns each one into a single-group constraint set.
type MatchSpec struct {
	Name        string
	Version     *Range[Version]
	BuildNumber *BuildNumber
}

// ToConstraints translates the requirement into a constraint set with exactly
// one AND group. Unconstrained fields default to the full range, so a
// requirement with neither field set equals FullConstraints.
func (m MatchSpec) ToConstraints() MatchSpecConstraints {
	version := FullRange[Version]()
	if m.Version != nil {
		version = *m.Version
	}

	buildNumber := FullRange[BuildNumber]()
	if m.BuildNumber != nil {
		buildNumber = SingletonRange(*m.BuildNumber)
	}

	if version.IsEmpty() || buildNumber.IsEmpty() {
		return EmptyConstraints()
	}

	return MatchSpecConstraints{
		groups: []MatchSpecElement{
			{version: version, buildNumber: buildNumber},
		},
	}
}

// String returns a human-readable representation of the requirement.
func (m MatchSpec) String() string {
	var parts []string
	if m.Name != "" {
		parts = append(parts, m.Name)
	}
	if m.Version != nil {
		parts = append(parts, m.Version.String())
	}
	if m.BuildNumber != nil {
		parts = append(parts, fmt.Sprintf("build %d", *m.BuildNumber))
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}
