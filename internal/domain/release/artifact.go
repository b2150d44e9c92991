package release

import (
	"context"
	"strings"
)

// ExtPlaceholder is substituted by the packaging tool with each target's file extension.
const ExtPlaceholder = "${ext}"

// ArtifactName returns product_version_label.${ext}.
// Nightly builds name the artifact after the build date instead of the composed
// version; the composed version is still what goes into the app metadata.
// Inputs are not validated here.
func ArtifactName(
	ctx context.Context,
	product string,
	composed string,
	mode BuildMode,
	platform Platform,
	clock TimestampSource,
) (string, error) {
	version := composed

	if mode == ModeNightly {
		var err error

		version, err = nightlySuffix(ctx, clock)
		if err != nil {
			return "", err
		}
	}

	var builder strings.Builder

	builder.WriteString(product)
	builder.WriteString("_")
	builder.WriteString(version)
	builder.WriteString("_")
	builder.WriteString(platform.Label)
	builder.WriteString(".")
	builder.WriteString(ExtPlaceholder)

	return builder.String(), nil
}
