// Package manifest extracts the declared project version from the build,
// documentation, and packaging manifests and verifies the declarations agree.
// Each manifest kind has its own extraction rule; comparison is exact string
// equality, so "2.5" and "2.5.0" are different versions.
package manifest
