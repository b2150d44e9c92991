// Package revision reads the current commit of the repository being packaged.
package revision
