package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	runewidth "github.com/mattn/go-runewidth"

	"stickies/internal/types"
)

func printNotes(output io.Writer, notes []types.Note) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "IDX\tPOS\tSIZE\tTEXT")
	for i, note := range notes {
		fmt.Fprintf(writer, "%d\t%d,%d\t%dx%d\t%s\n",
			i, note.X, note.Y, note.Width, note.Height, firstLine(note.Text))
	}
	_ = writer.Flush()
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	const maxWidth = 48
	return runewidth.Truncate(line, maxWidth, "…")
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}
