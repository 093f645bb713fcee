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
	"unique"
)

// Name represents a package name using value interning for memory efficiency.
// Multiple instances of the same package name share the same underlying memory.
//
// Name uses Go's unique.Handle for efficient string interning, enabling:
//   - Fast equality comparisons (pointer comparison instead of string comparison)
//   - Reduced memory usage when the same package names appear frequently
//   - Safe concurrent access (interning is thread-safe)
type Name = unique.Handle[string]

// MakeName creates an interned Name from a string.
// Equal strings will return the same Name value, enabling fast comparisons.
func MakeName(s string) Name {
	return unique.Make(s)
}

// PackageRecord identifies one concrete build of a package as published in a
// channel. Only Version and BuildNumber participate in constraint matching;
// Name and Build ride along for display and for selecting among builds of the
// same version.
type PackageRecord struct {
	Name        Name
	Version     Version
	Build       string
	BuildNumber BuildNumber
}

// String returns the conventional name-version-build rendering of the record.
func (r PackageRecord) String() string {
	if r.Build != "" {
		return fmt.Sprintf("%s-%s-%s", r.Name.Value(), r.Version, r.Build)
	}
	return fmt.Sprintf("%s-%s-%d", r.Name.Value(), r.Version, r.BuildNumber)
}
