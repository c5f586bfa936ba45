// Package cli defines the Cobra command tree for the repogate CLI. Each file
// in this package registers one top-level command (license, versions, format,
// postprocess-docs, check, config, version) with the root command. Command
// implementations delegate to internal packages for the actual checks and only
// handle flag parsing, configuration resolution, and I/O wiring.
package cli
