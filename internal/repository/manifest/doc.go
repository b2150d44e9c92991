// Package manifest reads the npm package manifests the packager takes its
// versions from: the application's base and Electron versions, and the
// bundled CLI version passed through as metadata.
package manifest
