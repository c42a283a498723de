package keyring

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
)

// Fingerprint returns a short fingerprint of the public key: the first
// 10 bytes of the SHA-256 of its SubjectPublicKeyInfo encoding, in hex.
// Two keys share a fingerprint iff they share an encoding.
func Fingerprint(pub *rsa.PublicKey) string {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(der)
	return hex.EncodeToString(sum[:10])
}
