// Package version provides parsing and ordering of dotted numeric version
// strings (e.g. "1.72.0") as reported by toolchains.
//
// Versions are compared component-wise as (major, minor, patch); missing
// trailing components are treated as zero, so "1.72" and "1.72.0" order the
// same. Strings with non-numeric components do not parse.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed (major, minor, patch) version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a dotted numeric version string into a [Version].
//
// Up to three components are accepted; missing trailing components default
// to zero. An empty string, more than three components, or any non-numeric
// component is an error.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version format: %s", s)
	}

	var components [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil || value < 0 {
			return Version{}, fmt.Errorf("invalid version component %q in %s", part, s)
		}
		components[i] = value
	}

	return Version{Major: components[0], Minor: components[1], Patch: components[2]}, nil
}

// String returns the canonical "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare compares two versions component-wise.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// IsNewer reports whether version a orders after version b.
//
// With strictly true, equal versions are not newer; with strictly false they
// are. If either string fails to parse, IsNewer returns false: a malformed
// version can never satisfy an ordering constraint, so comparisons against it
// fail closed rather than guessing.
func IsNewer(a, b string, strictly bool) bool {
	av, err := Parse(a)
	if err != nil {
		return false
	}
	bv, err := Parse(b)
	if err != nil {
		return false
	}

	switch av.Compare(bv) {
	case 1:
		return true
	case 0:
		return !strictly
	default:
		return false
	}
}
