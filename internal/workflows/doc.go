// Package workflows implements the file-level operations behind Sealbox
// CLI commands.
//
// Each workflow takes an Options struct and returns a Result struct plus
// an error, keeping the CLI layer free of business logic. Workflows wrap
// low-level failures with sentinel errors from internal/errors so the
// CLI can branch on errors.Is, write output files atomically so a failed
// run never leaves a usable partial file, and append an audit entry on
// success.
//
// The core contract lives below this package: key parsing in
// internal/keyring, the cipher and container format in internal/hybrid.
// Workflows only move bytes between the filesystem and those packages.
package workflows
