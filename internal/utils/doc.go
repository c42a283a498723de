// Package utils provides shared utility functions for the Sealbox application.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # Filesystem Utilities
//
//   - WriteFileAtomic: temp-file-and-rename write, never leaves partial output
//   - EnsureDir: create a directory tree with permissions
//   - FileExists: regular-file existence check
//   - FormatPaths: formats file paths for human-readable output
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//
// # I/O Utilities
//
//   - ReadStdin: reads all data from standard input (piped key material)
//
// # String Utilities
//
//   - IsValidKeyName: validates user-supplied key names
package utils
