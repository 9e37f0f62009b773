package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"stickies/internal/config"
)

type PathCommand struct {
	stdout       io.Writer
	stderr       io.Writer
	loadSettings func() (config.Settings, error)
}

func NewPathCommand(stdout, stderr io.Writer, loadSettings func() (config.Settings, error)) *PathCommand {
	return &PathCommand{
		stdout:       stdout,
		stderr:       stderr,
		loadSettings: loadSettings,
	}
}

func (c *PathCommand) Run(args []string) error {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := c.loadSettings()
	if err != nil {
		return err
	}
	path := settings.NotesPath()
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	fmt.Fprintln(c.stdout, path)
	return nil
}
