package main

import (
	"io"
	"os"

	"stickies/internal/config"
	"stickies/internal/store"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout       io.Writer
	stderr       io.Writer
	stdin        io.Reader
	loadSettings func() (config.Settings, error)
	newStore     func(path string) store.BoardStore
	runBoard     func(settings config.Settings) error
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:       stdout,
		stderr:       stderr,
		stdin:        os.Stdin,
		loadSettings: config.LoadSettings,
		newStore: func(path string) store.BoardStore {
			return store.NewFileBoardStore(path)
		},
		runBoard: runBoard,
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"board": NewBoardCommand(wiring.stderr, wiring.loadSettings, wiring.runBoard),
		"add":   NewAddCommand(wiring.stdout, wiring.stderr, wiring.stdin, wiring.loadSettings, wiring.newStore),
		"ls":    NewLSCommand(wiring.stdout, wiring.stderr, wiring.loadSettings, wiring.newStore),
		"rm":    NewRMCommand(wiring.stdout, wiring.stderr, wiring.loadSettings, wiring.newStore),
		"path":  NewPathCommand(wiring.stdout, wiring.stderr, wiring.loadSettings),
	}
}
