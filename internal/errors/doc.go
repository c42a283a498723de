// Package errors provides typed error values for the Sealbox application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key errors: key material problems (ErrKeyFormat, ErrMissingPrivateKey)
//   - Container errors: structural problems (ErrMalformedContainer)
//   - Crypto errors: decryption failures (ErrDecryptionFailed)
//   - File errors: input/output issues (ErrFileNotFound, ErrOutputExists)
//
// # The merged decryption failure
//
// ErrKeyUnwrap and ErrPaddingValidation exist so the engine internals and
// their tests can name the two real causes of a failed decryption, but the
// engine's public Decrypt deliberately collapses both into
// ErrDecryptionFailed. Distinguishing the two at the API boundary would
// hand an attacker a padding oracle; the merge is a design choice, not a
// catch-all.
//
// # Usage
//
// Return errors from internal packages:
//
//	if block == nil {
//	    return nil, sberrors.ErrKeyFormat
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, sberrors.ErrDecryptionFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("loading key from %s: %w", path, sberrors.ErrKeyFormat)
package errors
