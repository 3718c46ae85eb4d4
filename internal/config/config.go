// Package config loads the application configuration from a TOML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid configuration")

// Config represents the application configuration.
type Config struct {
	Language    string                 `toml:"language"`
	LogPath     string                 `toml:"log_path"`
	LogLevel    string                 `toml:"log_level"`
	CatalogPath string                 `toml:"catalog_path"` // Empty uses the bundled catalog
	Headless    bool                   `toml:"headless"`
	Window      WindowConfig           `toml:"window"`
	Theme       ThemeConfig            `toml:"theme"`
}

// WindowConfig describes the desktop window. The front end maps it to its
// own window options.
type WindowConfig struct {
	Borderless        bool  `toml:"borderless"`
	Resizable         bool  `toml:"resizable"`
	Fullscreen        bool  `toml:"fullscreen"`
	FullscreenDesktop bool  `toml:"fullscreen_desktop"`
	Width             int32 `toml:"width"`  // 0 uses the display width
	Height            int32 `toml:"height"` // 0 uses the display height
}

// ThemeConfig overrides the default theme.
type ThemeConfig struct {
	AccentColor string `toml:"accent_color"` // "#RRGGBB"
	FontPath    string `toml:"font_path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Language: "en",
		LogLevel: "info",
		Window: WindowConfig{
			Resizable: true,
			Width:     1024,
			Height:    768,
		},
	}
}

// Load reads the file at path over the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("configuration file not found: %s", path)
		case err != nil:
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		c.LogLevel = level
	}

	for name, target := range map[string]*int32{
		constants.WindowWidthEnvVar:  &c.Window.Width,
		constants.WindowHeightEnvVar: &c.Window.Height,
	} {
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, name, raw, err)
		}
		*target = int32(n)
	}

	if constants.IsDevMode() {
		c.LogLevel = "debug"
	}
	return nil
}

// Validate checks values the rest of the application relies on.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}

	if _, err := c.Theme.AccentHex(); err != nil {
		return err
	}
	return nil
}

// AccentHex parses AccentColor as 0xRRGGBB. An empty color is zero.
func (t ThemeConfig) AccentHex() (uint32, error) {
	if t.AccentColor == "" {
		return 0, nil
	}

	raw := strings.TrimPrefix(t.AccentColor, "#")
	if len(raw) != 6 {
		return 0, fmt.Errorf("%w: accent_color %q", ErrInvalid, t.AccentColor)
	}
	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: accent_color %q", ErrInvalid, t.AccentColor)
	}
	return uint32(n), nil
}
