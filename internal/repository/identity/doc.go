// Package identity persists the release identity of a packaging run as YAML,
// so later pipeline steps (upload, notarization) can reuse the exact version
// and artifact name without recomputing them.
package identity
