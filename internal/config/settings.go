package config

import (
	"errors"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"stickies/internal/store"
)

// Settings is the optional TOML configuration. Everything has a default;
// a missing file means a default board.
type Settings struct {
	Store   StoreConfig   `toml:"store"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

type StoreConfig struct {
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type UIConfig struct {
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

type KeybindingsConfig struct {
	Path string `toml:"path"`
}

func DefaultSettings() Settings {
	return Settings{
		Logging: LoggingConfig{Level: "info"},
	}
}

func LoadSettings() (Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultSettings(), err
	}
	return loadSettingsFromPath(path)
}

func loadSettingsFromPath(path string) (Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, err
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

// NotesPath resolves the store location: the configured override, or the
// fixed default file in the working directory.
func (s Settings) NotesPath() string {
	path := strings.TrimSpace(s.Store.Path)
	if path == "" {
		return store.DefaultNotesFile
	}
	return path
}

func (s Settings) LogLevel() string {
	level := strings.TrimSpace(s.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

// ResolveKeymapPath returns the configured keybinding file, or the
// default under the data directory.
func (s Settings) ResolveKeymapPath() (string, error) {
	path := strings.TrimSpace(s.UI.Keybindings.Path)
	if path != "" {
		return path, nil
	}
	return KeymapPath()
}
