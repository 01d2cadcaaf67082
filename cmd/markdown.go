package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. On rendering errors it
// falls back to the raw markdown, which is still readable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning, could not render markdown:", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
