package release

import (
	"fmt"
	"strings"
)

// BuildMode classifies a build. Exactly one mode is active per packaging run.
type BuildMode string

const (
	// ModeRelease packages the base version as is.
	ModeRelease BuildMode = "release"
	// ModeNightly suffixes the base version with the build date.
	ModeNightly BuildMode = "nightly"
	// ModeSnapshot suffixes the base version with the short commit hash.
	ModeSnapshot BuildMode = "snapshot"
)

// Flags are the externally supplied build-context switches.
type Flags struct {
	// IsRelease marks an official release build.
	IsRelease bool
	// IsNightly marks a scheduled nightly build.
	IsNightly bool
}

// ResolveMode maps the build flags to a mode.
// Release takes precedence when both flags are set; no flag means snapshot.
func ResolveMode(flags Flags) BuildMode {
	switch {
	case flags.IsRelease:
		return ModeRelease
	case flags.IsNightly:
		return ModeNightly
	default:
		return ModeSnapshot
	}
}

// String returns the mode name.
func (m BuildMode) String() string {
	return string(m)
}

// ParseBuildMode converts a mode name into a BuildMode.
func ParseBuildMode(s string) (BuildMode, error) {
	switch mode := BuildMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ModeRelease, ModeNightly, ModeSnapshot:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown build mode: '%s'", s)
	}
}
