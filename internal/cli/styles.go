package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// printTokens writes one token per line with a right-aligned index column.
// Colors are only emitted when w is a terminal.
func printTokens(w io.Writer, tokens []string) {
	r := lipgloss.NewRenderer(w)
	width := len(strconv.Itoa(len(tokens) - 1))
	indexStyle := r.NewStyle().Faint(true).Width(width).Align(lipgloss.Right)
	programStyle := r.NewStyle().Bold(true)

	for i, tok := range tokens {
		text := tok
		if i == 0 {
			text = programStyle.Render(tok)
		}
		_, _ = fmt.Fprintf(w, "%s  %s\n", indexStyle.Render(strconv.Itoa(i)), text)
	}
}
