// Package keypair transforms an Ed25519 keypair between the byte array representation
// [b0,b1,...,b63] and the base58 string representation.
package keypair

import (
	"fmt"

	"github.com/bartossh/KeypairTransform/logger"
)

// Result is the outcome of a successful transformation.
type Result struct {
	From    Kind
	To      Kind
	Output  string
	Address string // base58 public key
}

// Transformer runs classification, decoding and encoding of a single keypair.
type Transformer struct {
	log logger.Logger
}

// New creates new Transformer.
func New(log logger.Logger) Transformer {
	return Transformer{log: log}
}

// Transform transforms raw keypair in to the opposite representation.
// No output is produced when any stage fails.
func (t Transformer) Transform(raw string) (Result, error) {
	c, err := Classify(raw)
	if err != nil {
		t.log.Debug(fmt.Sprintf("classification failed: %s", err))
		return Result{}, err
	}
	t.log.Debug(fmt.Sprintf("classified input as %s", c.Kind()))

	w, err := Decode(c)
	if err != nil {
		t.log.Debug(fmt.Sprintf("decoding %s failed: %s", c.Kind(), err))
		return Result{}, err
	}
	t.log.Debug(fmt.Sprintf("decoded keypair of address %s", w.Address()))

	res := Result{
		From:    c.Kind(),
		To:      c.Kind().Opposite(),
		Output:  Encode(w, c.Kind()),
		Address: w.Address(),
	}
	t.log.Debug(fmt.Sprintf("encoded keypair as %s", res.To))

	return res, nil
}
