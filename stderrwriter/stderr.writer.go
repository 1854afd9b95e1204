package stderrwriter

import (
	"fmt"
	"io"
	"os"
)

// Logger writes each log record as a separate line to the standard error,
// keeping the standard output free for the command result.
type Logger struct {
	W io.Writer
}

func (l Logger) Write(p []byte) (n int, err error) {
	w := l.W
	if w == nil {
		w = os.Stderr
	}
	if _, err := fmt.Fprintln(w, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
