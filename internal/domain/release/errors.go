package release

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSemver is returned when an input version does not follow the semver grammar.
	ErrInvalidSemver = errors.New("invalid semantic version")
	// ErrInvalidComposedVersion is returned when a version built from a valid base
	// and a mode suffix is no longer valid semver.
	ErrInvalidComposedVersion = errors.New("invalid composed version")
	// ErrUnsupportedPlatform is returned for an OS/architecture pair outside the platform table.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// UnsupportedPlatformError carries the offending host identifiers.
type UnsupportedPlatformError struct {
	// OS is the operating system identifier that was looked up.
	OS string
	// Arch is the architecture identifier that was looked up.
	Arch string
}

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("%s, arch: %s, %s", ErrUnsupportedPlatform, e.OS, e.Arch)
}

// Is makes errors.Is(err, ErrUnsupportedPlatform) succeed.
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}
