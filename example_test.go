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

package matchspec_test

import (
	"fmt"

	matchspec "github.com/contriboss/matchspec-go"
)

// ExampleMatchSpec_ToConstraints demonstrates combining two requirements on
// the same package and checking a concrete candidate against the result.
func ExampleMatchSpec_ToConstraints() {
	// "datrie >=1.0, <2.0" and "datrie >=1.5, <3.0" as structured requirements.
	first := matchspec.RangeBetween(
		matchspec.MustParseVersion("1.0"), true,
		matchspec.MustParseVersion("2.0"), false,
	)
	second := matchspec.RangeBetween(
		matchspec.MustParseVersion("1.5"), true,
		matchspec.MustParseVersion("3.0"), false,
	)

	a := matchspec.MatchSpec{Name: "datrie", Version: &first}.ToConstraints()
	b := matchspec.MatchSpec{Name: "datrie", Version: &second}.ToConstraints()

	both := a.Intersection(b)
	fmt.Println(both)

	candidate := matchspec.PackageRecord{
		Name:        matchspec.MakeName("datrie"),
		Version:     matchspec.MustParseVersion("1.7"),
		BuildNumber: 0,
	}
	fmt.Println(both.Contains(candidate))

	// Output:
	// version >=1.5, <2.0
	// true
}

// ExampleMatchSpecConstraints_Complement shows the inverted constraint a
// solver derives while learning from a conflict.
func ExampleMatchSpecConstraints_Complement() {
	record := matchspec.PackageRecord{
		Name:        matchspec.MakeName("datrie"),
		Version:     matchspec.MustParseVersion("1.2.3"),
		BuildNumber: 1,
	}

	exact := matchspec.SingletonConstraints(record)
	fmt.Println(exact)
	fmt.Println(exact.Complement())
	fmt.Println(exact.Complement().Contains(record))

	// Output:
	// version ==1.2.3 and build ==1
	// version (<1.2.3 || >1.2.3) || build (<1 || >1)
	// false
}
