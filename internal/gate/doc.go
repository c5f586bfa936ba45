// Package gate holds the result model shared by all compliance checks:
// typed exit errors that carry a process exit code through the command tree,
// and the ordered aggregation strategies that fold per-file results into a
// single run-level code.
package gate
