// Package hybrid implements the cipher engine behind Sealbox containers.
//
// The scheme is classic hybrid encryption: a fresh AES-256 session key
// encrypts the file bytes in CBC mode with PKCS#7 padding, and the
// recipient's RSA public key wraps that session key with OAEP (SHA-256
// for both the hash and the mask generation function). The container
// binds the wrapped key, the IV, and the ciphertext into one byte
// sequence:
//
//	uint32 BE wrapped-key length | wrapped key | 16-byte IV | ciphertext
//
// The wrapped-key length is recorded rather than assumed because it
// tracks the modulus size of whatever public key was used.
//
// The scheme provides confidentiality only. There is no MAC: tampering
// is caught only when it breaks the OAEP unwrap or the final padding
// check, which is why Decrypt reports every cryptographic failure as one
// indistinguishable ErrDecryptionFailed.
//
// Calls are stateless and single-shot; concurrent use with separate
// inputs is safe.
package hybrid
