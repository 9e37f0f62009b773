package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"stickies/internal/app"
	"stickies/internal/config"
	"stickies/internal/logging"
	"stickies/internal/store"
)

type BoardCommand struct {
	stderr       io.Writer
	loadSettings func() (config.Settings, error)
	runBoard     func(settings config.Settings) error
}

func NewBoardCommand(stderr io.Writer, loadSettings func() (config.Settings, error), runBoard func(settings config.Settings) error) *BoardCommand {
	return &BoardCommand{
		stderr:       stderr,
		loadSettings: loadSettings,
		runBoard:     runBoard,
	}
}

func (c *BoardCommand) Run(args []string) error {
	fs := flag.NewFlagSet("board", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := c.loadSettings()
	if err != nil {
		return err
	}
	return c.runBoard(settings)
}

func runBoard(settings config.Settings) error {
	logger := boardLogger(settings)

	keymapPath, err := settings.ResolveKeymapPath()
	if err != nil {
		return err
	}
	keys, err := app.LoadKeybindings(keymapPath)
	if err != nil {
		return err
	}

	notesPath := settings.NotesPath()
	boardStore := store.NewFileBoardStore(notesPath)

	watcher, err := store.WatchNotesFile(notesPath)
	if err != nil {
		logger.Warn("store watcher unavailable", logging.F("err", err))
		watcher = nil
	} else {
		defer watcher.Close()
	}

	logger.Info("board starting", logging.F("store", notesPath))
	return app.Run(boardStore, logger, keys, watcher)
}

// boardLogger logs to a file: the terminal belongs to the UI.
func boardLogger(settings config.Settings) logging.Logger {
	path, err := config.UILogPath()
	if err != nil {
		return logging.Nop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return logging.Nop()
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logging.Nop()
	}
	return logging.New(file, logging.ParseLevel(settings.LogLevel()))
}
