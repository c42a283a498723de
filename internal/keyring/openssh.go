package keyring

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"golang.org/x/crypto/ssh"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

// parseOpenSSHPrivateKey parses an OpenSSH-format private key. Encrypted
// keys are recognized and reported as ErrPassphraseRequired; Sealbox never
// prompts for or accepts a passphrase.
func parseOpenSSHPrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	parsed, err := ssh.ParseRawPrivateKey(pemBytes)
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%w: OpenSSH key is encrypted", sberrors.ErrPassphraseRequired)
		}
		return nil, fmt.Errorf("%w: %v", sberrors.ErrKeyFormat, err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: OpenSSH key is not RSA", sberrors.ErrKeyFormat)
	}
	return priv, nil
}
