// Package keyring provides the key providers Sealbox encrypts and
// decrypts with.
//
// Two provider variants exist, distinguished at the type level rather
// than by a runtime capability check:
//
//   - KeypairProvider holds a private key and can serve both encryption
//     (via its derived public half) and decryption.
//   - PublicOnlyProvider holds just a public key and can only serve
//     encryption.
//
// Both satisfy the small Provider interface (PublicKey); only
// KeypairProvider has PrivateKey. Code that needs to decrypt takes a
// KeypairProvider, so handing it a public-only key is a compile-time
// error inside this module and a clean ErrMissingPrivateKey at the
// workflow boundary where keys arrive from files.
//
// # Encodings
//
// Private keys are written as unencrypted PKCS#8 PEM and read back from
// PKCS#8, legacy PKCS#1, or unencrypted OpenSSH encodings. Public keys
// use SubjectPublicKeyInfo (PKIX) PEM. Anything else is ErrKeyFormat;
// passphrase-protected OpenSSH keys are ErrPassphraseRequired.
package keyring
