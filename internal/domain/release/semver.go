package release

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// rangeMarker is the caret prefix package managers put in front of dependency versions.
const rangeMarker = "^"

// ValidateSemver normalizes s and checks it against the strict semver grammar
// MAJOR.MINOR.PATCH[-prerelease][+build]. Surrounding whitespace and a single
// leading caret are removed. The normalized string is returned.
func ValidateSemver(s string) (string, error) {
	normalized := strings.TrimPrefix(strings.TrimSpace(s), rangeMarker)

	v, err := semver.StrictNewVersion(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: '%s': %w", ErrInvalidSemver, s, err)
	}

	return v.String(), nil
}
