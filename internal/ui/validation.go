package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"naukariwala-site/internal/config"
)

// PrintValidation lists errors and warnings for the config at path.
func PrintValidation(w io.Writer, path string, vr config.Validation) {
	if vr.OK() && len(vr.Warnings) == 0 {
		fmt.Fprintf(w, "%s %s\n", pterm.Green("ok"), path)
		return
	}
	for _, e := range vr.Errors {
		fmt.Fprintf(w, "%s %s\n", pterm.Red("error"), e)
	}
	for _, wn := range vr.Warnings {
		fmt.Fprintf(w, "%s %s\n", pterm.Yellow("warning"), wn)
	}
	if vr.OK() {
		fmt.Fprintf(w, "%s %s (%d warning(s))\n", pterm.Green("ok"), path, len(vr.Warnings))
	}
}
