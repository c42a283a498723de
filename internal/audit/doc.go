// Package audit provides audit trail logging for Sealbox operations.
//
// Every significant operation (keygen, encrypt, decrypt, inspect) is
// recorded in a user-level audit log so a user can reconstruct what was
// sealed, unsealed, and with which key.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) in the
// user config directory:
//
//	<config dir>/sealbox/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - User name and UUID
//   - Operation name
//   - Operation-specific details (input/output paths, key name, fingerprint)
//
// # Usage
//
// Create an entry with user info pre-populated:
//
//	entry := audit.LogWithUser("encrypt")
//	entry.InputPath = inputPath
//	entry.OutputPath = outputPath
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error. Operations should never
// fail just because audit logging failed.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
