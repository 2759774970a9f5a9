// Package config handles loading and saving qv configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/qv/config.yaml
//   - State:   ~/.local/state/qv/ (recent decks)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Deck represents a registered deck in the config.
type Deck struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// UIConfig holds UI preference settings.
type UIConfig struct {
	ShowExplanations bool `yaml:"show_explanations,omitempty"` // Show explanations after answering
	WrapWidth        int  `yaml:"wrap_width,omitempty"`        // Max content width (default 100)
	Headless         bool `yaml:"headless,omitempty"`          // Compact header mode
}

// WatchConfig controls live reload of the deck file.
type WatchConfig struct {
	Disabled   bool `yaml:"disabled,omitempty"`
	DebounceMS int  `yaml:"debounce_ms,omitempty"` // Debounce window (default 500)
}

// Config is the top-level configuration for qv.
type Config struct {
	DefaultDeck string      `yaml:"default_deck,omitempty"` // Deck path used when none is given
	Decks       []Deck      `yaml:"decks,omitempty"`
	UI          UIConfig    `yaml:"ui,omitempty"`
	Watch       WatchConfig `yaml:"watch,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			ShowExplanations: true,
			WrapWidth:        100,
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
	}
}

// ConfigDir returns the XDG config directory for qv.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "qv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "qv")
}

// StateDir returns the XDG state directory for qv.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "qv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "qv")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	// Expand ~ in deck paths
	cfg.DefaultDeck = expandHome(cfg.DefaultDeck)
	for i := range cfg.Decks {
		cfg.Decks[i].Path = expandHome(cfg.Decks[i].Path)
	}

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// FindDeck returns the deck with the given name, or nil.
func (c Config) FindDeck(name string) *Deck {
	for i := range c.Decks {
		if strings.EqualFold(c.Decks[i].Name, name) {
			return &c.Decks[i]
		}
	}
	return nil
}

// DebounceMS returns the configured watch debounce in milliseconds,
// falling back to the default when unset or nonsensical.
func (c Config) DebounceMS() int {
	if c.Watch.DebounceMS <= 0 {
		return 500
	}
	return c.Watch.DebounceMS
}

// ResolvedPath returns the deck path with ~ expanded.
func (d Deck) ResolvedPath() string {
	return expandHome(d.Path)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
