package release

import (
	"context"
	"sync"
)

// Input is everything a packaging run knows before its identity is derived.
type Input struct {
	// Product is the artifact name prefix, e.g. arduino-ide.
	Product string
	// BaseVersion is the version from the application manifest.
	BaseVersion string
	// Flags select the build mode.
	Flags Flags
	// Host is the machine the artifacts are built for.
	Host Host
}

// Sources are the suspending collaborators of the pipeline.
type Sources struct {
	Clock    TimestampSource
	Revision RevisionSource
}

// Identity is the release identity of one packaging run.
type Identity struct {
	// Mode is the resolved build mode.
	Mode BuildMode `yaml:"mode"`
	// BaseVersion is the validated manifest version.
	BaseVersion string `yaml:"base_version"`
	// Version is the composed version written into the app metadata.
	Version string `yaml:"version"`
	// Platform is the resolved host platform.
	Platform Platform `yaml:"platform"`
	// ArtifactName is the file name template for the packaging tool.
	ArtifactName string `yaml:"artifact_name"`
}

// Resolve derives the release identity. Steps run in order and the first
// failure aborts the run. The clock is read at most once, so a nightly
// version and its artifact name always share the same date.
func Resolve(ctx context.Context, in Input, src Sources) (*Identity, error) {
	clock := &onceTimestamp{source: src.Clock}
	mode := ResolveMode(in.Flags)

	base, err := ValidateSemver(in.BaseVersion)
	if err != nil {
		return nil, err
	}

	version, err := ComposeVersion(ctx, base, mode, clock, src.Revision)
	if err != nil {
		return nil, err
	}

	platform, err := ResolvePlatform(in.Host.OS, in.Host.Arch)
	if err != nil {
		return nil, err
	}

	name, err := ArtifactName(ctx, in.Product, version, mode, platform, clock)
	if err != nil {
		return nil, err
	}

	return &Identity{
		Mode:         mode,
		BaseVersion:  base,
		Version:      version,
		Platform:     platform,
		ArtifactName: name,
	}, nil
}

// onceTimestamp memoizes the first successful read of a TimestampSource.
type onceTimestamp struct {
	source TimestampSource

	mu    sync.Mutex
	value string
	read  bool
}

// Timestamp implements TimestampSource.
func (o *onceTimestamp) Timestamp(ctx context.Context) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.read {
		return o.value, nil
	}

	value, err := o.source.Timestamp(ctx)
	if err != nil {
		return "", err
	}

	o.value, o.read = value, true

	return value, nil
}
