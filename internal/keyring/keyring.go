package keyring

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

const (
	// KeyBits is the RSA modulus size for generated keypairs.
	KeyBits = 2048
)

// Provider exposes the public half of a key. Both provider variants
// satisfy it; only KeypairProvider can also decrypt.
type Provider interface {
	PublicKey() *rsa.PublicKey
}

// PublicOnlyProvider holds a public key and can only encrypt.
type PublicOnlyProvider struct {
	pub *rsa.PublicKey
}

// PublicKey returns the held public key.
func (p *PublicOnlyProvider) PublicKey() *rsa.PublicKey { return p.pub }

// KeypairProvider holds a private key; the public half is derived from it.
type KeypairProvider struct {
	priv *rsa.PrivateKey
}

// PublicKey returns the public half of the keypair.
func (p *KeypairProvider) PublicKey() *rsa.PublicKey { return &p.priv.PublicKey }

// PrivateKey returns the private key.
func (p *KeypairProvider) PrivateKey() *rsa.PrivateKey { return p.priv }

// Generate creates a new RSA-2048 keypair from crypto/rand.
// The public exponent is 65537 (the crypto/rsa fixed value).
func Generate() (*KeypairProvider, error) {
	priv, err := rsa.GenerateKey(rand.Reader, KeyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}
	return &KeypairProvider{priv: priv}, nil
}

// NewKeypairProvider wraps an existing private key.
func NewKeypairProvider(priv *rsa.PrivateKey) *KeypairProvider {
	return &KeypairProvider{priv: priv}
}

// NewPublicOnlyProvider wraps an existing public key.
func NewPublicOnlyProvider(pub *rsa.PublicKey) *PublicOnlyProvider {
	return &PublicOnlyProvider{pub: pub}
}

// LoadPrivate parses a PEM-encoded RSA private key. PKCS#8 ("PRIVATE KEY")
// is the canonical encoding; legacy PKCS#1 ("RSA PRIVATE KEY") and
// unencrypted OpenSSH keys are accepted for interoperability.
//
// Returns ErrKeyFormat for anything that is not a valid RSA private key
// encoding, and ErrPassphraseRequired for passphrase-protected OpenSSH
// keys (recognized, never decrypted).
func LoadPrivate(data []byte) (*KeypairProvider, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", sberrors.ErrKeyFormat)
	}

	switch block.Type {
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", sberrors.ErrKeyFormat, err)
		}
		priv, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA private key", sberrors.ErrKeyFormat)
		}
		return &KeypairProvider{priv: priv}, nil

	case "RSA PRIVATE KEY":
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", sberrors.ErrKeyFormat, err)
		}
		return &KeypairProvider{priv: priv}, nil

	case "OPENSSH PRIVATE KEY":
		priv, err := parseOpenSSHPrivateKey(data)
		if err != nil {
			return nil, err
		}
		return &KeypairProvider{priv: priv}, nil

	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", sberrors.ErrKeyFormat, block.Type)
	}
}

// LoadPublic parses a PEM-encoded SubjectPublicKeyInfo RSA public key.
// Returns ErrKeyFormat on malformed input.
func LoadPublic(data []byte) (*PublicOnlyProvider, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("%w: no public key PEM block found", sberrors.ErrKeyFormat)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sberrors.ErrKeyFormat, err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", sberrors.ErrKeyFormat)
	}
	return &PublicOnlyProvider{pub: pub}, nil
}

// MarshalPrivate serializes the private key as unencrypted PKCS#8 PEM.
// LoadPrivate(MarshalPrivate(k)) yields a key equal to k.
func (p *KeypairProvider) MarshalPrivate() ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(p.priv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// MarshalPublic serializes a public key as SubjectPublicKeyInfo PEM.
func MarshalPublic(pub *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
