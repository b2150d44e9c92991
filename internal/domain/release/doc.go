// Package release derives the release identity of a desktop application build.
//
// Given a base version, the build mode (release, nightly or snapshot) and the
// host platform, it composes a validated semantic version and the artifact
// file name handed to the packaging tool. Clock and version-control reads are
// injected through TimestampSource and RevisionSource, so every function here
// is deterministic for fixed inputs.
package release
