package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Missing config must fall back, got error: %v", err)
	}
	if cfg.Screen.Width != 640 || cfg.Screen.Height != 480 {
		t.Errorf("Default screen = %dx%d, want 640x480", cfg.Screen.Width, cfg.Screen.Height)
	}
	if len(cfg.Windows) != 4 {
		t.Errorf("Expected 4 default windows, got %d", len(cfg.Windows))
	}
	if len(cfg.Script) == 0 {
		t.Error("Default config must carry the demo script")
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestLoadConfigParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
app_name = "Test"
socket_path = "/tmp/test_socket"

[screen]
width = 800
height = 600
tick_millis = 20

[desktop]
menu_bar_height = 30
dock_height = 50
wallpaper = [10, 20, 30]

[[windows]]
title = "Demo"
content = "terminal"
x = 10
y = 10
width = 200
height = 150
color = [40, 44, 52]

[notifications]
lifetime = 100
spacing = 90

[[script]]
tick = 5
action = "notify"
arg = "Hi:there"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Screen.Width != 800 {
		t.Errorf("Screen width = %d, want 800", cfg.Screen.Width)
	}
	if cfg.Desktop.Wallpaper != (RGB{10, 20, 30}) {
		t.Errorf("Wallpaper = %v", cfg.Desktop.Wallpaper)
	}
	if len(cfg.Windows) != 1 || cfg.Windows[0].Content != "terminal" {
		t.Errorf("Windows not parsed: %+v", cfg.Windows)
	}
	if len(cfg.Script) != 1 || cfg.Script[0].Tick != 5 {
		t.Errorf("Script not parsed: %+v", cfg.Script)
	}
}

func TestValidateRejectsDegenerateValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny screen", func(c *Config) { c.Screen.Width = 10 }},
		{"zero tick", func(c *Config) { c.Screen.TickMillis = 0 }},
		{"oversized menu bar", func(c *Config) { c.Desktop.MenuBarHeight = c.Screen.Height }},
		{"zero-size window", func(c *Config) { c.Windows[0].Width = 0 }},
		{"zero lifetime", func(c *Config) { c.Notifications.Lifetime = 0 }},
		{"empty script action", func(c *Config) { c.Script = append(c.Script, ScriptEventConfig{Tick: 1}) }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig
		cfg.Windows = append([]WindowConfig(nil), DefaultConfig.Windows...)
		cfg.Script = append([]ScriptEventConfig(nil), DefaultConfig.Script...)
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.toml")
	cfg := DefaultConfig
	cfg.AppName = "RoundTrip"

	if err := SaveConfig(&cfg, path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadAndValidateConfig(path)
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if loaded.AppName != "RoundTrip" {
		t.Errorf("AppName = %q after round trip", loaded.AppName)
	}
	if loaded.Notifications.Lifetime != cfg.Notifications.Lifetime {
		t.Errorf("Lifetime lost in round trip: %d", loaded.Notifications.Lifetime)
	}
}
