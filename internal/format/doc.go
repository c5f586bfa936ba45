// Package format runs an external code formatter over a set of files, either
// rewriting them in place or verifying (dry run) that no rewrite is needed.
// Formatting itself is fully delegated to the formatter binary; this package
// only orchestrates per-file invocations and aggregates their exit codes.
package format
