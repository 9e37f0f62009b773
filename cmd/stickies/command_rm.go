package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"stickies/internal/config"
	"stickies/internal/store"
)

type RMCommand struct {
	stdout       io.Writer
	stderr       io.Writer
	loadSettings func() (config.Settings, error)
	newStore     func(path string) store.BoardStore
}

func NewRMCommand(stdout, stderr io.Writer, loadSettings func() (config.Settings, error), newStore func(path string) store.BoardStore) *RMCommand {
	return &RMCommand{
		stdout:       stdout,
		stderr:       stderr,
		loadSettings: loadSettings,
		newStore:     newStore,
	}
}

func (c *RMCommand) Run(args []string) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: stickies rm <index>")
	}
	index, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", fs.Arg(0), err)
	}

	settings, err := c.loadSettings()
	if err != nil {
		return err
	}
	notes, err := c.newStore(settings.NotesPath()).Remove(context.Background(), index)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "removed note %d, %d remaining\n", index, len(notes))
	return nil
}
