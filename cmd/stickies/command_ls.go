package main

import (
	"context"
	"flag"
	"io"

	"stickies/internal/config"
	"stickies/internal/store"
)

type LSCommand struct {
	stdout       io.Writer
	stderr       io.Writer
	loadSettings func() (config.Settings, error)
	newStore     func(path string) store.BoardStore
}

func NewLSCommand(stdout, stderr io.Writer, loadSettings func() (config.Settings, error), newStore func(path string) store.BoardStore) *LSCommand {
	return &LSCommand{
		stdout:       stdout,
		stderr:       stderr,
		loadSettings: loadSettings,
		newStore:     newStore,
	}
}

func (c *LSCommand) Run(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := c.loadSettings()
	if err != nil {
		return err
	}
	notes, err := c.newStore(settings.NotesPath()).Load(context.Background())
	if err != nil {
		return err
	}
	printNotes(c.stdout, notes)
	return nil
}
