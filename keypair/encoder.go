package keypair

import (
	"github.com/bartossh/KeypairTransform/serializer"
	"github.com/bartossh/KeypairTransform/wallet"
)

// Encode renders the keypair in the representation opposite to the one it was given in.
func Encode(w wallet.Wallet, from Kind) string {
	raw := w.Bytes()
	if from.Opposite() == Array {
		return serializer.ArrayEncode(raw)
	}
	return string(serializer.Base58Encode(raw))
}
