// Package version parses and orders the MAJOR.MINOR.PATCH versions used to
// gate project migrations.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a string is not a three-component numeric version.
var ErrInvalid = errors.New("invalid version")

// Version is a semantic version without pre-release or build metadata.
// A nil *Version means "no version recorded".
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses "MAJOR.MINOR.PATCH". Surrounding whitespace is ignored.
// Every component must be a non-negative decimal integer.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w %q: want MAJOR.MINOR.PATCH", ErrInvalid, s)
	}

	var nums [3]int
	for i, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return Version{}, fmt.Errorf("%w %q: component %q is not a number", ErrInvalid, s, p)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w %q: %v", ErrInvalid, s, err)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParse is like Parse but panics on error. Intended for hand-written
// catalog entries and tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseOptional parses s, treating the empty string as absent (nil).
func ParseOptional(s string) (*Version, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// String returns the canonical "MAJOR.MINOR.PATCH" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders two optional versions and returns -1, 0 or 1.
//
// A nil a is always less, so Compare(nil, nil) is -1 and not 0. Selection
// depends on this: an absent current version never matches an absent target.
func Compare(a, b *Version) int {
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	pairs := [3][2]int{
		{a.Major, b.Major},
		{a.Minor, b.Minor},
		{a.Patch, b.Patch},
	}
	for _, p := range pairs {
		if p[0] > p[1] {
			return 1
		}
		if p[0] < p[1] {
			return -1
		}
	}
	return 0
}

// CompareStrings parses both arguments (empty means absent) and compares them.
func CompareStrings(a, b string) (int, error) {
	va, err := ParseOptional(a)
	if err != nil {
		return 0, err
	}
	vb, err := ParseOptional(b)
	if err != nil {
		return 0, err
	}
	return Compare(va, vb), nil
}

// Less reports whether v sorts before o.
func (v Version) Less(o Version) bool {
	return Compare(&v, &o) < 0
}
