// Package builder invokes the external packaging tool.
//
// ExecRunner streams the tool's output to the packager's own stdio and turns
// a non-zero exit status into an error. IsRunning detects the tool already
// running on the host, and Lock keeps two packaging runs from writing into the
// same working directory at once.
package builder
