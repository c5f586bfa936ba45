// Package config loads the project-level repogate.yaml file that supplies
// per-check defaults (search paths, file patterns, exclusions, manifest
// locations, formatter binary). Values resolve in flag > environment > file >
// builtin-default order; the file is validated against an embedded JSON
// schema before use.
package config
