// Package config defines the packager settings and helpers to load and
// validate them from YAML.
//
// Build mode switches are not part of the file: BuildFlags reads them from the
// IS_RELEASE / IS_NIGHTLY environment variables and the --release / --nightly
// command line flags.
package config
