package serializer

import (
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
)

// Base58Encode encodes byte array to base58 string.
func Base58Encode(input []byte) []byte {
	encode := base58.Encode(input)

	return []byte(encode)
}

// Base58Decode decodes base58 string to byte array.
func Base58Decode(input []byte) ([]byte, error) {
	decode, err := base58.Decode(string(input[:]))
	if err != nil {
		return nil, err
	}

	return decode, nil
}

// ArrayEncode renders byte array as comma separated decimal values enclosed in square brackets.
// There is no whitespace in the result, eg. [1,2,255].
func ArrayEncode(input []byte) string {
	var b strings.Builder
	b.Grow(len(input)*4 + 2)
	b.WriteByte('[')
	for i, v := range input {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(']')

	return b.String()
}
