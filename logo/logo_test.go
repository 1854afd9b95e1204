package logo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	Display(&buf)
	assert.Contains(t, buf.String(), "base58 string")
}
