package release

import (
	"context"
	"fmt"
)

const (
	nightlyPrefix  = "nightly-"
	snapshotPrefix = "snapshot-"
)

// TimestampSource returns the build date token (yyyymmdd).
type TimestampSource interface {
	Timestamp(ctx context.Context) (string, error)
}

// RevisionSource returns the short identifier of the current revision.
type RevisionSource interface {
	Revision(ctx context.Context) (string, error)
}

// TimestampFunc adapts a function to TimestampSource.
type TimestampFunc func(ctx context.Context) (string, error)

// Timestamp implements TimestampSource.
func (f TimestampFunc) Timestamp(ctx context.Context) (string, error) {
	return f(ctx)
}

// RevisionFunc adapts a function to RevisionSource.
type RevisionFunc func(ctx context.Context) (string, error)

// Revision implements RevisionSource.
func (f RevisionFunc) Revision(ctx context.Context) (string, error) {
	return f(ctx)
}

// ComposeVersion builds the version of a packaging run from the base version and mode.
//
//   - release:  raw
//   - nightly:  raw-nightly-<timestamp>
//   - snapshot: raw-snapshot-<revision>
//
// Both the raw and the composed versions must be valid semver.
// Only the collaborator the mode needs is called.
func ComposeVersion(
	ctx context.Context,
	raw string,
	mode BuildMode,
	clock TimestampSource,
	rev RevisionSource,
) (string, error) {
	base, err := ValidateSemver(raw)
	if err != nil {
		return "", err
	}

	var suffix string

	switch mode {
	case ModeRelease:
		return base, nil
	case ModeNightly:
		suffix, err = nightlySuffix(ctx, clock)
	case ModeSnapshot:
		suffix, err = snapshotSuffix(ctx, rev)
	default:
		return "", fmt.Errorf("unknown build mode: '%s'", mode)
	}

	if err != nil {
		return "", err
	}

	composed := base + "-" + suffix
	if _, err = ValidateSemver(composed); err != nil {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidComposedVersion, composed)
	}

	return composed, nil
}

func nightlySuffix(ctx context.Context, clock TimestampSource) (string, error) {
	timestamp, err := clock.Timestamp(ctx)
	if err != nil {
		return "", fmt.Errorf("read build timestamp: %w", err)
	}

	return nightlyPrefix + timestamp, nil
}

func snapshotSuffix(ctx context.Context, rev RevisionSource) (string, error) {
	revision, err := rev.Revision(ctx)
	if err != nil {
		return "", fmt.Errorf("read current revision: %w", err)
	}

	return snapshotPrefix + revision, nil
}
