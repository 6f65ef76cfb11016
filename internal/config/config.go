// Package config handles tabler configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/henrilemoine/tabler/internal/grid"
	"github.com/henrilemoine/tabler/internal/store"
)

// Config represents tabler configuration.
type Config struct {
	Grid GridConfig `toml:"grid"`
	Data DataConfig `toml:"data"`
	UI   UIConfig   `toml:"ui"`
	Keys KeysConfig `toml:"keys"`
}

// GridConfig contains grid layout settings.
type GridConfig struct {
	// Gap between columns, in cells
	ColumnSpacing int `toml:"column_spacing"`

	// Blank lines between rows
	RowSpacing int `toml:"row_spacing"`

	// Whether the header row is shown at startup
	ShowHeader bool `toml:"show_header"`

	// Hovered row highlight: "reverse", "bold", "underline", or "none"
	HoverStyle string `toml:"hover_style"`
}

// DataConfig contains settings for the task file and the initial fetch.
type DataConfig struct {
	// Task file (.toml, .yaml or .yml)
	Path string `toml:"path"`

	// Initial sort: "id", "name", "status", or "priority"
	Sort string `toml:"sort"`

	// Sort descending
	Descending bool `toml:"descending"`

	// Hide tasks marked done
	HideDone bool `toml:"hide_done"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Show the key help footer
	ShowHelp bool `toml:"show_help"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Sort    string `toml:"sort"`
	Reverse string `toml:"reverse"`
	Filter  string `toml:"filter"`
	Header  string `toml:"header"`
	Save    string `toml:"save"`
	Reload  string `toml:"reload"`
	Help    string `toml:"help"`
	Quit    string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			ColumnSpacing: 2,
			RowSpacing:    0,
			ShowHeader:    true,
			HoverStyle:    "reverse",
		},
		Data: DataConfig{
			Path:       DefaultDataPath(),
			Sort:       "id",
			Descending: false,
			HideDone:   false,
		},
		UI: UIConfig{
			Theme:    "auto",
			ShowHelp: true,
		},
		Keys: KeysConfig{
			Up:      "up,k",
			Down:    "down,j",
			Toggle:  "space,x",
			Sort:    "s",
			Reverse: "S",
			Filter:  "/",
			Header:  "h",
			Save:    "w",
			Reload:  "R",
			Help:    "?",
			Quit:    "q,ctrl+c",
		},
	}
}

// GridOptions converts the grid section into grid options.
func (c *Config) GridOptions() []grid.Option {
	opts := []grid.Option{
		grid.WithColumnSpacing(c.Grid.ColumnSpacing),
		grid.WithRowSpacing(c.Grid.RowSpacing),
		grid.WithShowHeader(c.Grid.ShowHeader),
	}

	hover := lipgloss.NewStyle()
	switch c.Grid.HoverStyle {
	case "bold":
		hover = hover.Bold(true)
	case "underline":
		hover = hover.Underline(true)
	case "none":
	default:
		hover = hover.Reverse(true)
	}
	return append(opts, grid.WithHoverStyle(hover))
}

// Request builds the initial fetch request from the data section.
// An unknown sort key falls back to sorting by id.
func (c *Config) Request() store.Request {
	key, _ := store.ParseSortKey(c.Data.Sort)
	return store.Request{
		Sort:       key,
		Descending: c.Data.Descending,
		HideDone:   c.Data.HideDone,
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/tabler/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "tabler", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "tabler", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "tabler", "config.toml")
	}
	return filepath.Join(configDir, "tabler", "config.toml")
}

// DefaultDataPath returns the default task file location,
// ~/.local/share/tabler/tasks.toml unless XDG_DATA_HOME is set.
func DefaultDataPath() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "tabler", "tasks.toml")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share", "tabler", "tasks.toml")
	}
	return filepath.Join(".", "tasks.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// (booleans included) survive for anything left unspecified.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to the config file.
func Save(cfg *Config) error {
	return SaveToPath(cfg, ConfigPath())
}

// SaveToPath saves configuration to path.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Grid.ColumnSpacing < 0 {
		warnings = append(warnings, fmt.Sprintf("grid.column_spacing must not be negative, got %d", c.Grid.ColumnSpacing))
	}
	if c.Grid.RowSpacing < 0 {
		warnings = append(warnings, fmt.Sprintf("grid.row_spacing must not be negative, got %d", c.Grid.RowSpacing))
	}

	if !oneOf(c.Grid.HoverStyle, "", "reverse", "bold", "underline", "none") {
		warnings = append(warnings, fmt.Sprintf("Invalid value for grid.hover_style: %s (expected reverse, bold, underline, or none)", c.Grid.HoverStyle))
	}

	if c.Data.Sort != "" {
		if _, err := store.ParseSortKey(c.Data.Sort); err != nil {
			warnings = append(warnings, fmt.Sprintf("Invalid value for data.sort: %s (expected id, name, status, or priority)", c.Data.Sort))
		}
	}

	if c.Data.Path != "" {
		switch strings.ToLower(filepath.Ext(c.Data.Path)) {
		case ".toml", ".yaml", ".yml":
		default:
			warnings = append(warnings, fmt.Sprintf("data.path should end in .toml, .yaml or .yml: %s", c.Data.Path))
		}
	}

	if !oneOf(c.UI.Theme, "", "auto", "dark", "light") {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	return warnings
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
