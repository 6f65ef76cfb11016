package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/henrilemoine/tabler/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Toggle  key.Binding
	Sort    key.Binding
	Reverse key.Binding
	Filter  key.Binding
	Header  key.Binding
	Save    key.Binding
	Reload  key.Binding

	// General
	Quit key.Binding
	Help key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMapFromConfig(&config.DefaultConfig().Keys)
}

// KeyMapFromConfig creates a KeyMap from config settings. Empty settings
// fall back to the defaults.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	def := config.DefaultConfig().Keys
	pick := func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return v
	}
	bind := func(v, fallback, desc string) key.Binding {
		v = pick(v, fallback)
		return key.NewBinding(
			key.WithKeys(parseKeys(v)...),
			key.WithHelp(v, desc),
		)
	}

	return KeyMap{
		Up:      bind(cfg.Up, def.Up, "up"),
		Down:    bind(cfg.Down, def.Down, "down"),
		Toggle:  bind(cfg.Toggle, def.Toggle, "toggle done"),
		Sort:    bind(cfg.Sort, def.Sort, "next sort column"),
		Reverse: bind(cfg.Reverse, def.Reverse, "reverse sort"),
		Filter:  bind(cfg.Filter, def.Filter, "filter"),
		Header:  bind(cfg.Header, def.Header, "toggle header"),
		Save:    bind(cfg.Save, def.Save, "save"),
		Reload:  bind(cfg.Reload, def.Reload, "reload"),
		Help:    bind(cfg.Help, def.Help, "help"),
		Quit:    bind(cfg.Quit, def.Quit, "quit"),
	}
}

// parseKeys parses a comma-separated list of keys. "space" stands for the
// space bar, which Bubble Tea reports as " ".
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "space" {
			p = " "
		}
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
