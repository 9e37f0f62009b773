package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))
	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.NotesPath() != "sticky_notes.json" {
		t.Fatalf("unexpected default notes path: %q", settings.NotesPath())
	}
	if settings.LogLevel() != "info" {
		t.Fatalf("unexpected default log level: %q", settings.LogLevel())
	}
}

func TestLoadSettingsFromTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)

	dataDir := filepath.Join(home, ".stickies")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := []byte("[store]\npath = \"/tmp/board.json\"\n\n[logging]\nlevel = \"debug\"\n")
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.NotesPath() != "/tmp/board.json" {
		t.Fatalf("unexpected notes path: %q", settings.NotesPath())
	}
	if settings.LogLevel() != "debug" {
		t.Fatalf("unexpected log level: %q", settings.LogLevel())
	}
}

func TestLoadSettingsMalformedTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)

	dataDir := filepath.Join(home, ".stickies")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte("store = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadSettings(); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestResolveKeymapPath(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)

	settings := Settings{}
	path, err := settings.ResolveKeymapPath()
	if err != nil {
		t.Fatalf("ResolveKeymapPath: %v", err)
	}
	if want := filepath.Join(home, ".stickies", "keymap.json"); path != want {
		t.Fatalf("unexpected default keymap path: got=%q want=%q", path, want)
	}

	settings.UI.Keybindings.Path = "/etc/stickies/keys.json"
	path, err = settings.ResolveKeymapPath()
	if err != nil {
		t.Fatalf("ResolveKeymapPath override: %v", err)
	}
	if path != "/etc/stickies/keys.json" {
		t.Fatalf("override not honored: %q", path)
	}
}
