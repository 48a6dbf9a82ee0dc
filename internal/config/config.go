package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full shell configuration.
type Config struct {
	AppName    string `toml:"app_name"`
	SocketPath string `toml:"socket_path"`

	Screen        ScreenConfig        `toml:"screen"`
	Desktop       DesktopConfig       `toml:"desktop"`
	Windows       []WindowConfig      `toml:"windows"`
	Notifications NotificationConfig  `toml:"notifications"`
	Search        SearchConfig        `toml:"search"`
	Workspaces    []WorkspaceConfig   `toml:"workspaces"`
	Modal         ModalConfig         `toml:"modal"`
	Script        []ScriptEventConfig `toml:"script"`
}

// RGB is a color as a [r, g, b] triple in config files.
type RGB [3]uint8

type ScreenConfig struct {
	Width      int `toml:"width"`
	Height     int `toml:"height"`
	TickMillis int `toml:"tick_millis"`
}

type DesktopConfig struct {
	MenuBarHeight int `toml:"menu_bar_height"`
	DockHeight    int `toml:"dock_height"`
	Wallpaper     RGB `toml:"wallpaper"`
}

type WindowConfig struct {
	Title   string `toml:"title"`
	Content string `toml:"content"`
	X       int    `toml:"x"`
	Y       int    `toml:"y"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Color   RGB    `toml:"color"`
}

type NotificationConfig struct {
	StartX     int                `toml:"start_x"`
	RestX      int                `toml:"rest_x"`
	TopY       int                `toml:"top_y"`
	Width      int                `toml:"width"`
	Height     int                `toml:"height"`
	Spacing    int                `toml:"spacing"`
	SlideTicks int                `toml:"slide_ticks"`
	Lifetime   int                `toml:"lifetime"`
	Seed       []SeedNotification `toml:"seed"`
}

type SeedNotification struct {
	Title   string `toml:"title"`
	Message string `toml:"message"`
}

type SearchConfig struct {
	Catalog []CatalogItem `toml:"catalog"`
}

type CatalogItem struct {
	Name     string `toml:"name"`
	Category string `toml:"category"`
}

type WorkspaceConfig struct {
	Wallpaper RGB `toml:"wallpaper"`
}

type ModalConfig struct {
	Title string   `toml:"title"`
	Lines []string `toml:"lines"`
}

// ScriptEventConfig is one scheduled action: at Tick, apply Action with Arg.
type ScriptEventConfig struct {
	Tick   uint32 `toml:"tick"`
	Action string `toml:"action"`
	Arg    string `toml:"arg"`
}

// DefaultConfig is the built-in demo storyline on a 640x480 desktop.
var DefaultConfig = Config{
	AppName:    "Mirage",
	SocketPath: "/tmp/mirage_socket",
	Screen: ScreenConfig{
		Width:      640,
		Height:     480,
		TickMillis: 16,
	},
	Desktop: DesktopConfig{
		MenuBarHeight: 24,
		DockHeight:    60,
		Wallpaper:     RGB{30, 130, 180},
	},
	Windows: []WindowConfig{
		{Title: "Files", Content: "files", X: 80, Y: 80, Width: 500, Height: 350, Color: RGB{255, 255, 255}},
		{Title: "Terminal - zsh - 80x24", Content: "terminal", X: 200, Y: 120, Width: 450, Height: 300, Color: RGB{40, 44, 52}},
		{Title: "System Preferences", Content: "settings", X: 150, Y: 200, Width: 400, Height: 350, Color: RGB{248, 248, 248}},
		{Title: "Browser - Mirage Docs", Content: "browser", X: 120, Y: 60, Width: 520, Height: 400, Color: RGB{255, 255, 255}},
	},
	Notifications: NotificationConfig{
		StartX:     640,
		RestX:      320,
		TopY:       50,
		Width:      300,
		Height:     80,
		Spacing:    90,
		SlideTicks: 30,
		Lifetime:   300,
		Seed: []SeedNotification{
			{Title: "Welcome to Mirage", Message: "Simulated desktop shell"},
			{Title: "System Ready", Message: "All services loaded"},
		},
	},
	Search: SearchConfig{
		Catalog: []CatalogItem{
			{Name: "Terminal", Category: "Utilities"},
			{Name: "Finder", Category: "System"},
			{Name: "System Preferences", Category: "System"},
		},
	},
	Workspaces: []WorkspaceConfig{
		{Wallpaper: RGB{30, 130, 180}},
		{Wallpaper: RGB{180, 30, 130}},
	},
	Modal: ModalConfig{
		Title: "About This Desktop",
		Lines: []string{"Mirage", "Version 2.0.0", "", "Memory: 1024 MB", "Surface: 640x480 RGBA"},
	},
	Script: []ScriptEventConfig{
		{Tick: 180, Action: "search-show"},
		{Tick: 181, Action: "search-type", Arg: "ter"},
		{Tick: 240, Action: "search-hide"},
		{Tick: 300, Action: "notify", Arg: "Memory Update:Available 847MB of 1024MB"},
		{Tick: 420, Action: "switcher-show"},
		{Tick: 440, Action: "switcher-next"},
		{Tick: 480, Action: "switcher-hide"},
		{Tick: 540, Action: "modal-show"},
		{Tick: 600, Action: "notify", Arg: "Network Status:Connected to Mirage Network"},
		{Tick: 660, Action: "modal-hide"},
	},
}

// LoadConfig reads a TOML config, falling back to the defaults when the file
// does not exist.
func LoadConfig(path string) (*Config, error) {
	expandedPath := expandPath(path)

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := DefaultConfig
		return &cfg, nil
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.SocketPath = expandPath(cfg.SocketPath)

	return &cfg, nil
}

// LoadAndValidateConfig loads a config and rejects degenerate values.
func LoadAndValidateConfig(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config as TOML, creating parent directories.
func SaveConfig(cfg *Config, path string) error {
	expandedPath := expandPath(path)

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(expandedPath, data, 0644)
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		usr, err := user.Current()
		if err == nil {
			return filepath.Join(usr.HomeDir, path[1:])
		}
	}
	return path
}

// Validate checks bounds on the values the compositor depends on.
func (c *Config) Validate() error {
	if err := c.validateScreen(); err != nil {
		return err
	}
	if err := c.validateDesktop(); err != nil {
		return err
	}
	if err := c.validateWindows(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	if err := c.validateScript(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScreen() error {
	s := c.Screen
	if s.Width < 64 || s.Width > 4096 {
		return fmt.Errorf("invalid screen width: %d (must be 64-4096)", s.Width)
	}
	if s.Height < 64 || s.Height > 4096 {
		return fmt.Errorf("invalid screen height: %d (must be 64-4096)", s.Height)
	}
	if s.TickMillis < 1 || s.TickMillis > 1000 {
		return fmt.Errorf("invalid tick_millis: %d (must be 1-1000)", s.TickMillis)
	}
	return nil
}

func (c *Config) validateDesktop() error {
	d := c.Desktop
	if d.MenuBarHeight < 0 || d.MenuBarHeight > c.Screen.Height/2 {
		return fmt.Errorf("invalid menu_bar_height: %d", d.MenuBarHeight)
	}
	if d.DockHeight < 0 || d.DockHeight > c.Screen.Height/2 {
		return fmt.Errorf("invalid dock_height: %d", d.DockHeight)
	}
	return nil
}

func (c *Config) validateWindows() error {
	for i, w := range c.Windows {
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("window %d (%s) has degenerate size %dx%d", i, w.Title, w.Width, w.Height)
		}
	}
	return nil
}

func (c *Config) validateNotifications() error {
	n := c.Notifications
	if n.Spacing < 0 {
		return fmt.Errorf("invalid notification spacing: %d", n.Spacing)
	}
	if n.SlideTicks < 0 {
		return fmt.Errorf("invalid notification slide_ticks: %d", n.SlideTicks)
	}
	if n.Lifetime < 1 {
		return fmt.Errorf("invalid notification lifetime: %d", n.Lifetime)
	}
	return nil
}

func (c *Config) validateScript() error {
	for i, ev := range c.Script {
		if ev.Action == "" {
			return fmt.Errorf("script event %d has no action", i)
		}
	}
	return nil
}
