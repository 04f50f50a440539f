package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"naukariwala-site/internal/content"
)

// PrintBlocks renders line-prefix content for a terminal.
func PrintBlocks(w io.Writer, blocks []content.Block) {
	for _, b := range blocks {
		switch b.Kind {
		case content.BlockHeading:
			fmt.Fprintln(w, pterm.Bold.Sprint(strings.ToUpper(b.Text)))
		case content.BlockSubheading:
			fmt.Fprintln(w)
			fmt.Fprintln(w, pterm.Bold.Sprint(b.Text))
		case content.BlockListItem:
			fmt.Fprintf(w, "  • %s\n", b.Text)
		case content.BlockBold:
			fmt.Fprintln(w, pterm.Bold.Sprint(b.Text))
		case content.BlockSpacer:
			fmt.Fprintln(w)
		default:
			fmt.Fprintln(w, b.Text)
		}
	}
}
