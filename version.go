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
	"strconv"
	"strings"
)

// Version represents a package version as an optional epoch followed by
// dot-separated segments of numeric and alphabetic runs.
//
// Supported forms include "1.2.3", epoch-qualified versions like "2!1.0",
// and alphanumeric segments like "1.0a", "1.0.post1" or "1.2-rc1" ('-' and '_'
// separate segments like '.').
//
// Ordering rules:
//  1. Epochs compare numerically; a missing epoch is 0.
//  2. Segments compare run by run; numeric runs compare numerically.
//  3. A missing trailing run compares as the number 0, so "1.0" == "1.0.0".
//  4. An alphabetic run sorts before a numeric run, so a trailing alphabetic
//     run marks a pre-release: "1.0a" < "1.0" < "1.1".
type Version struct {
	raw   string
	epoch int
	parts []versionPart
}

// versionPart is a single numeric or alphabetic run of a version.
type versionPart struct {
	number  int
	literal string
	numeric bool
}

var zeroPart = versionPart{numeric: true}

// ParseVersion parses a version string.
// Comparison is case-insensitive; the original spelling is kept for display.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Version{}, fmt.Errorf("empty version")
	}

	lower := strings.ToLower(raw)
	v := Version{raw: raw}

	if i := strings.IndexByte(lower, '!'); i >= 0 {
		epoch, err := strconv.Atoi(lower[:i])
		if err != nil || epoch < 0 {
			return Version{}, fmt.Errorf("invalid epoch in version %q", s)
		}
		v.epoch = epoch
		lower = lower[i+1:]
	}

	// '-' and '_' behave like '.'.
	lower = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return '.'
		}
		return r
	}, lower)

	for _, segment := range strings.Split(lower, ".") {
		if segment == "" {
			return Version{}, fmt.Errorf("empty segment in version %q", s)
		}
		parts, err := splitRuns(segment)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		v.parts = append(v.parts, parts...)
	}

	return v, nil
}

// MustParseVersion parses a version string and panics on failure.
// Intended for tests and static initialization.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// splitRuns breaks a segment like "0a12" into alternating numeric and
// alphabetic runs.
func splitRuns(segment string) ([]versionPart, error) {
	var parts []versionPart
	for len(segment) > 0 {
		i := 0
		if isDigit(segment[0]) {
			for i < len(segment) && isDigit(segment[i]) {
				i++
			}
			number, err := strconv.Atoi(segment[:i])
			if err != nil {
				return nil, fmt.Errorf("numeric run %q too large", segment[:i])
			}
			parts = append(parts, versionPart{number: number, numeric: true})
		} else if isAlpha(segment[0]) {
			for i < len(segment) && isAlpha(segment[i]) {
				i++
			}
			parts = append(parts, versionPart{literal: segment[:i]})
		} else {
			return nil, fmt.Errorf("unexpected character %q", segment[0])
		}
		segment = segment[i:]
	}
	return parts, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' }

// String returns the version as originally written.
func (v Version) String() string {
	return v.raw
}

// Sort implements Ordered.
// Returns:
//   - negative if v < other
//   - zero if v == other
//   - positive if v > other
func (v Version) Sort(other Version) int {
	if v.epoch != other.epoch {
		if v.epoch < other.epoch {
			return -1
		}
		return 1
	}

	n := len(v.parts)
	if len(other.parts) > n {
		n = len(other.parts)
	}

	for i := 0; i < n; i++ {
		a, b := zeroPart, zeroPart
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(other.parts) {
			b = other.parts[i]
		}
		if cmp := comparePart(a, b); cmp != 0 {
			return cmp
		}
	}

	return 0
}

// comparePart orders two runs. An alphabetic run sorts before a numeric run,
// so "1.0a" compares below "1.0", whose implied third run is the number 0.
// This is conda's pre-release ordering.
func comparePart(a, b versionPart) int {
	switch {
	case a.numeric && b.numeric:
		switch {
		case a.number < b.number:
			return -1
		case a.number > b.number:
			return 1
		default:
			return 0
		}
	case a.numeric:
		return 1
	case b.numeric:
		return -1
	default:
		return strings.Compare(a.literal, b.literal)
	}
}

// canonicalKey returns a rendering that is identical for versions comparing
// equal under Sort, regardless of spelling ("1.0" and "1.0.0" share a key).
func (v Version) canonicalKey() string {
	parts := v.parts
	for len(parts) > 0 && parts[len(parts)-1] == zeroPart {
		parts = parts[:len(parts)-1]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d!", v.epoch)
	for i, p := range parts {
		if i > 0 {
			sb.WriteByte('.')
		}
		if p.numeric {
			sb.WriteString(strconv.Itoa(p.number))
		} else {
			sb.WriteString(p.literal)
		}
	}
	return sb.String()
}

var (
	_ Ordered[Version] = Version{}
	_ canonicalKeyer   = Version{}
)
