package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"stickies/internal/config"
	"stickies/internal/store"
	"stickies/internal/types"
)

type AddCommand struct {
	stdout       io.Writer
	stderr       io.Writer
	stdin        io.Reader
	loadSettings func() (config.Settings, error)
	newStore     func(path string) store.BoardStore
}

func NewAddCommand(stdout, stderr io.Writer, stdin io.Reader, loadSettings func() (config.Settings, error), newStore func(path string) store.BoardStore) *AddCommand {
	return &AddCommand{
		stdout:       stdout,
		stderr:       stderr,
		stdin:        stdin,
		loadSettings: loadSettings,
		newStore:     newStore,
	}
}

func (c *AddCommand) Run(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	at := fs.String("at", "", "position as x,y (default 4,2)")
	size := fs.String("size", "", "size as WxH (default 24x8)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	note := types.NewNote(4, 2)
	if *at != "" {
		x, y, err := parsePoint(*at)
		if err != nil {
			return err
		}
		note.X, note.Y = x, y
	}
	if *size != "" {
		w, h, err := parseSize(*size)
		if err != nil {
			return err
		}
		note.Width, note.Height = w, h
	}

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}
	note.Text = text

	settings, err := c.loadSettings()
	if err != nil {
		return err
	}
	notes, err := c.newStore(settings.NotesPath()).Append(context.Background(), note)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "added note %d\n", len(notes)-1)
	return nil
}

func parsePoint(raw string) (int, int, error) {
	left, right, ok := strings.Cut(raw, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid position %q, want x,y", raw)
	}
	x, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid position %q: %w", raw, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid position %q: %w", raw, err)
	}
	return x, y, nil
}

func parseSize(raw string) (int, int, error) {
	left, right, ok := strings.Cut(strings.ToLower(raw), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", raw)
	}
	w, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", raw, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", raw, err)
	}
	return w, h, nil
}
