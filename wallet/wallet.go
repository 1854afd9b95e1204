package wallet

import (
	"bytes"
	"errors"

	"golang.org/x/crypto/ed25519"

	"github.com/bartossh/KeypairTransform/serializer"
)

// KeypairSize is the size of the keypair in bytes, the seed followed by the public key.
const KeypairSize = ed25519.SeedSize + ed25519.PublicKeySize

var (
	ErrInvalidLength     = errors.New("keypair shall be exactly 64 bytes long")
	ErrPublicKeyMismatch = errors.New("public key is not derived from the secret key")
)

// Wallet holds public and private key of the keypair owner.
type Wallet struct {
	Private ed25519.PrivateKey `json:"private" yaml:"private"`
	Public  ed25519.PublicKey  `json:"public"  yaml:"public"`
}

// FromBytes creates Wallet from the 64 bytes keypair encoding, 32 bytes of secret seed followed by
// 32 bytes of public key. The public key has to be the one derived from the seed.
func FromBytes(raw []byte) (Wallet, error) {
	if len(raw) != KeypairSize {
		return Wallet{}, ErrInvalidLength
	}

	private := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	public, ok := private.Public().(ed25519.PublicKey)
	if !ok {
		return Wallet{}, errors.New("cannot cast derived key to ed25519 public key")
	}
	if !bytes.Equal(public, raw[ed25519.SeedSize:]) {
		return Wallet{}, ErrPublicKeyMismatch
	}

	return Wallet{Private: private, Public: public}, nil
}

// Bytes returns the 64 bytes keypair encoding.
func (w *Wallet) Bytes() []byte {
	buf := make([]byte, 0, KeypairSize)
	buf = append(buf, w.Private.Seed()...)
	return append(buf, w.Public...)
}

// Address returns base58 encoded public key.
func (w *Wallet) Address() string {
	return string(serializer.Base58Encode(w.Public))
}
