// Package config loads the browser configuration from a TOML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/shelf/internal/browse"
	"github.com/theirongolddev/shelf/internal/tui/icons"
	"github.com/theirongolddev/shelf/internal/tui/theme"
)

// OrientationAuto senses orientation from the window size.
const OrientationAuto = "auto"

// DefaultCellAspect mirrors layout.DefaultCellAspect; config does not
// import the TUI layout package.
const DefaultCellAspect = 2.0

// ErrConfigExists is returned by CreateDefault when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Config is the on-disk configuration.
type Config struct {
	CatalogFile    string    `toml:"catalog_file" json:"catalog_file"`
	Theme          string    `toml:"theme" json:"theme"`
	Icons          string    `toml:"icons" json:"icons"`
	Orientation    string    `toml:"orientation" json:"orientation"`
	CellAspect     float64   `toml:"cell_aspect" json:"cell_aspect"`
	RenderMarkdown bool      `toml:"render_markdown" json:"render_markdown"`
	Mouse          bool      `toml:"mouse" json:"mouse"`
	Log            LogConfig `toml:"log" json:"log"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-" json:"path,omitempty"`
	// UnknownKeys lists keys present in the file that no field consumed.
	UnknownKeys []string `toml:"-" json:"unknown_keys,omitempty"`
}

// LogConfig configures the file logger.
type LogConfig struct {
	File  string `toml:"file" json:"file"`
	Level string `toml:"level" json:"level"`
}

// LogLevels are the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// DefaultPath returns the default config file path
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shelf", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "shelf", "config.toml")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:       "auto",
		Icons:       "auto",
		Orientation: OrientationAuto,
		CellAspect:  DefaultCellAspect,
		Mouse:       true,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the config at path (DefaultPath when empty), applies
// environment overrides and validates the result. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		for _, key := range md.Undecoded() {
			cfg.UnknownKeys = append(cfg.UnknownKeys, key.String())
		}
		cfg.Path = path
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg.applyEnv()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv applies SHELF_* environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("SHELF_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("SHELF_ICONS"); v != "" {
		c.Icons = v
	}
	if v := os.Getenv("SHELF_ORIENTATION"); v != "" {
		c.Orientation = v
	}
	if v := os.Getenv("SHELF_CATALOG"); v != "" {
		c.CatalogFile = v
	}
	if v := os.Getenv("SHELF_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Icons = strings.ToLower(strings.TrimSpace(c.Icons))
	c.Orientation = strings.ToLower(strings.TrimSpace(c.Orientation))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.CatalogFile = ExpandHome(strings.TrimSpace(c.CatalogFile))
	c.Log.File = ExpandHome(strings.TrimSpace(c.Log.File))

	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.Icons == "" {
		c.Icons = "auto"
	}
	if c.Orientation == "" {
		c.Orientation = OrientationAuto
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !theme.Known(c.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(theme.Names(), ", "))
	}
	if !icons.Known(c.Icons) {
		return fmt.Errorf("unknown icon set %q (want auto, unicode, ascii or nerd)", c.Icons)
	}
	if c.Orientation != OrientationAuto {
		if _, ok := browse.ParseOrientation(c.Orientation); !ok {
			return fmt.Errorf("unknown orientation %q (want auto, landscape or portrait)", c.Orientation)
		}
	}
	if c.CellAspect <= 0 {
		return fmt.Errorf("cell_aspect must be positive, got %v", c.CellAspect)
	}
	if !validLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level %q (want one of %s)", c.Log.Level, strings.Join(LogLevels, ", "))
	}
	return nil
}

func validLevel(level string) bool {
	for _, l := range LogLevels {
		if l == level {
			return true
		}
	}
	return false
}

// PinnedOrientation returns the configured orientation, or
// OrientationUnknown when it is sensed from the window.
func (c *Config) PinnedOrientation() browse.Orientation {
	o, _ := browse.ParseOrientation(c.Orientation)
	return o
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// CreateDefault writes the default config to path (DefaultPath when empty).
// An existing file is only replaced when force is set.
func CreateDefault(path string, force bool) (string, error) {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Print(Default(), f); err != nil {
		return "", err
	}

	return path, nil
}

// Print writes config to a writer in TOML format
func Print(cfg *Config, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintln(&b, "# shelf configuration")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "# Catalog file (.toml, .yaml or .md). Empty uses the built-in catalog.")
	if cfg.CatalogFile != "" {
		fmt.Fprintf(&b, "catalog_file = %q\n", cfg.CatalogFile)
	} else {
		fmt.Fprintln(&b, "# catalog_file = \"~/.config/shelf/catalog.toml\"")
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "# %s\n", strings.Join(theme.Names(), " | "))
	fmt.Fprintf(&b, "theme = %q\n", cfg.Theme)
	fmt.Fprintln(&b, "# auto | unicode | ascii | nerd")
	fmt.Fprintf(&b, "icons = %q\n", cfg.Icons)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "# auto senses orientation from the window shape; landscape or portrait pins it")
	fmt.Fprintf(&b, "orientation = %q\n", cfg.Orientation)
	fmt.Fprintln(&b, "# Height/width ratio of a terminal cell")
	fmt.Fprintf(&b, "cell_aspect = %s\n", formatFloat(cfg.CellAspect))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "# Render product descriptions as Markdown")
	fmt.Fprintf(&b, "render_markdown = %t\n", cfg.RenderMarkdown)
	fmt.Fprintf(&b, "mouse = %t\n", cfg.Mouse)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "[log]")
	fmt.Fprintln(&b, "# Empty uses $XDG_STATE_HOME/shelf/shelf.log")
	fmt.Fprintf(&b, "file = %q\n", cfg.Log.File)
	fmt.Fprintf(&b, "level = %q\n", cfg.Log.Level)

	_, err := io.WriteString(w, b.String())
	return err
}

// formatFloat keeps a decimal point so the value decodes as a TOML float.
func formatFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
