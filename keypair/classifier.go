package keypair

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	arrayPattern  = regexp.MustCompile(`^\[.*\]$`)
	base58Pattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{43,88}$`)
)

// Kind is the textual representation a keypair was given in.
type Kind int

const (
	Array  Kind = iota // [b0,b1,...,b63]
	String             // base58
)

func (k Kind) String() string {
	switch k {
	case Array:
		return "array"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Opposite returns the representation the keypair is transformed to.
func (k Kind) Opposite() Kind {
	if k == Array {
		return String
	}
	return Array
}

// Classified is the raw input recognised as one of the keypair representations.
// Only one of bytes or text is set, according to kind.
type Classified struct {
	kind  Kind
	bytes []byte
	text  string
}

// Kind returns recognised representation.
func (c Classified) Kind() Kind {
	return c.kind
}

// Bytes returns a copy of parsed byte array, nil for the String kind.
func (c Classified) Bytes() []byte {
	if c.bytes == nil {
		return nil
	}
	return append([]byte{}, c.bytes...)
}

// Text returns base58 text, empty for the Array kind.
func (c Classified) Text() string {
	return c.text
}

// Classify recognises the representation of the raw keypair.
// Input enclosed in square brackets is always treated as a byte array and never falls back to base58.
// The length of the byte array is not validated here.
func Classify(raw string) (Classified, error) {
	if arrayPattern.MatchString(raw) {
		inner, ok := strings.CutPrefix(raw, "[")
		if !ok {
			return Classified{}, ErrInvalidFormat
		}
		inner, ok = strings.CutSuffix(inner, "]")
		if !ok {
			return Classified{}, ErrInvalidFormat
		}

		tokens := strings.Split(inner, ",")
		buf := make([]byte, 0, len(tokens))
		for _, token := range tokens {
			token = strings.TrimSpace(token)
			v, err := strconv.ParseUint(token, 10, 8)
			if err != nil {
				return Classified{}, &ParsingError{Token: token, err: err}
			}
			buf = append(buf, byte(v))
		}
		return Classified{kind: Array, bytes: buf}, nil
	}

	if base58Pattern.MatchString(raw) {
		return Classified{kind: String, text: raw}, nil
	}

	return Classified{}, ErrInvalidFormat
}
