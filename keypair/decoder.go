package keypair

import (
	"errors"
	"fmt"

	"github.com/bartossh/KeypairTransform/serializer"
	"github.com/bartossh/KeypairTransform/wallet"
)

// Decode creates the keypair from classified input.
func Decode(c Classified) (wallet.Wallet, error) {
	var raw []byte
	switch c.kind {
	case Array:
		raw = c.bytes
	case String:
		decoded, err := serializer.Base58Decode([]byte(c.text))
		if err != nil {
			return wallet.Wallet{}, transformationFailed("invalid base58 string", err)
		}
		raw = decoded
	default:
		return wallet.Wallet{}, transformationFailed(fmt.Sprintf("unknown representation %d", c.kind), nil)
	}

	w, err := wallet.FromBytes(raw)
	switch {
	case err == nil:
		return w, nil
	case errors.Is(err, wallet.ErrInvalidLength):
		return wallet.Wallet{}, transformationFailed(fmt.Sprintf("invalid keypair length %d", len(raw)), err)
	default:
		return wallet.Wallet{}, transformationFailed("invalid keypair bytes", err)
	}
}
