// Package license verifies that source files begin with the expected license
// header. The expected header comes from a builtin constant or is derived from
// a license template file; each scanned file receives exactly one compliance
// verdict.
package license
