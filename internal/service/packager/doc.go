// Package packager runs a packaging build: it reads the manifests, derives the
// release identity, and invokes the packaging tool with that identity as
// configuration overrides, never publishing.
//
// The identity can also be written to a YAML file for later pipeline steps.
package packager
