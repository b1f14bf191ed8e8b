// Package version implements the major.minor.patch version value used by
// projup templates.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/projup/projup/pkg/errors"
)

// Version is a three component template version.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

var (
	// Zero is 0.0.0.
	Zero = Version{}
	// One is 1.0.0, the version of a template that does not declare one.
	One = Version{Major: 1}
)

// New returns the version major.minor.patch.
func New(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads major[.minor[.patch]]. Missing components default to zero.
// More than three components, empty components and anything that is not a
// plain decimal integer are rejected.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Zero, errors.Newf(errors.ErrInvalidVersion, "version %q has more than three components", s).
			WithDetail("version", s)
	}

	var components [3]uint64
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Zero, errors.Wrapf(err, errors.ErrInvalidVersion, "invalid version component %q", part).
				WithDetail("version", s)
		}
		components[i] = n
	}

	return New(components[0], components[1], components[2]), nil
}

// String renders the version as major.minor.patch.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 depending on whether v is lower than, equal to
// or greater than other.
func (v Version) Compare(other Version) int {
	for _, pair := range [3][2]uint64{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	} {
		switch {
		case pair[0] < pair[1]:
			return -1
		case pair[0] > pair[1]:
			return 1
		}
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
