// Package version exposes build metadata of the ide-packager binary.
//
// Version, Commit and BuildTime are injected via -ldflags. This is the tool's
// own version, unrelated to the release identity it computes.
package version
