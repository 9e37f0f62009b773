package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".stickies"

// DataDir returns the base data directory for stickies.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the TOML settings file.
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "config.toml"), nil
}

// KeymapPath returns the path to the keybinding override file.
func KeymapPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "keymap.json"), nil
}

// UILogPath returns the path of the board log file. The terminal itself
// belongs to the UI, so board logs go to a file.
func UILogPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "ui.log"), nil
}
