package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	KeyCommandNewNote       = "ui.newNote"
	KeyCommandCloseNote     = "ui.closeNote"
	KeyCommandCopyNote      = "ui.copyNote"
	KeyCommandFocusNext     = "ui.focusNext"
	KeyCommandFocusPrev     = "ui.focusPrev"
	KeyCommandTogglePreview = "ui.togglePreview"
	KeyCommandBlur          = "ui.blur"
	KeyCommandQuit          = "ui.quit"
)

var defaultKeybindingByCommand = map[string]string{
	KeyCommandNewNote:       "ctrl+n",
	KeyCommandCloseNote:     "ctrl+w",
	KeyCommandCopyNote:      "ctrl+y",
	KeyCommandFocusNext:     "tab",
	KeyCommandFocusPrev:     "shift+tab",
	KeyCommandTogglePreview: "ctrl+p",
	KeyCommandBlur:          "esc",
	KeyCommandQuit:          "ctrl+c",
}

type Keybindings struct {
	byCommand map[string]string
	byKey     map[string]string
}

type keybindingEntry struct {
	Command string `json:"command"`
	Key     string `json:"key"`
}

func DefaultKeybindings() *Keybindings {
	return NewKeybindings(nil)
}

func NewKeybindings(overrides map[string]string) *Keybindings {
	byCommand := make(map[string]string, len(defaultKeybindingByCommand))
	for command, key := range defaultKeybindingByCommand {
		byCommand[command] = key
	}
	for command, key := range overrides {
		command = strings.TrimSpace(command)
		key = strings.TrimSpace(key)
		if command == "" || key == "" {
			continue
		}
		if _, ok := defaultKeybindingByCommand[command]; !ok {
			continue
		}
		byCommand[command] = key
	}
	byKey := make(map[string]string, len(byCommand))
	for command, key := range byCommand {
		if existing, ok := byKey[key]; ok {
			// Conflicting override; the command that holds the key by
			// default keeps it.
			if defaultKeybindingByCommand[existing] == key {
				continue
			}
		}
		byKey[key] = command
	}
	return &Keybindings{byCommand: byCommand, byKey: byKey}
}

// LoadKeybindings reads a JSON override file of {command, key} entries.
// A missing or empty file yields the defaults.
func LoadKeybindings(path string) (*Keybindings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultKeybindings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultKeybindings(), nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return DefaultKeybindings(), nil
	}
	var entries []keybindingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse keymap %s: %w", path, err)
	}
	overrides := make(map[string]string, len(entries))
	for _, entry := range entries {
		overrides[entry.Command] = entry.Key
	}
	return NewKeybindings(overrides), nil
}

// Command resolves a pressed key to a bound command.
func (k *Keybindings) Command(key string) (string, bool) {
	if k == nil {
		return "", false
	}
	command, ok := k.byKey[strings.TrimSpace(key)]
	return command, ok
}

func (k *Keybindings) KeyFor(command string) string {
	if k != nil {
		if key := strings.TrimSpace(k.byCommand[command]); key != "" {
			return key
		}
	}
	return defaultKeybindingByCommand[command]
}
