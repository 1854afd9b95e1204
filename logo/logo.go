package logo

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Display renders the application banner to the writer.
func Display(w io.Writer) {
	s, _ := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Key", pterm.FgCyan.ToStyle()),
		putils.LettersFromStringWithStyle("pair", pterm.FgLightMagenta.ToStyle())).Srender()
	fmt.Fprintln(w, pterm.DefaultCenter.Sprint(s))
	fmt.Fprintln(w, pterm.DefaultCenter.WithCenterEachLineSeparately().
		Sprint("Transforms Ed25519 keypair between\n[b0,b1,...,b63] byte array and base58 string."))
}
