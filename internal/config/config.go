package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/face"
)

// Config holds all application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Face    FaceConfig    `yaml:"face"`
	Assets  AssetsConfig  `yaml:"assets"`
	State   StateConfig   `yaml:"state"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds framebuffer and timer settings.
type DisplayConfig struct {
	Device   string `yaml:"device"`
	Interval string `yaml:"interval"`

	interval time.Duration
}

// FaceConfig holds the palette and dimensions of the face.
type FaceConfig struct {
	Accent        string  `yaml:"accent"`
	Ink           string  `yaml:"ink"`
	Tolerance     int     `yaml:"tolerance"`
	StrokeWidthDp float64 `yaml:"stroke_width_dp"`
	EdgeInsetDp   float64 `yaml:"edge_inset_dp"`
	PivotOffsetDp float64 `yaml:"pivot_offset_dp"`
	Density       float64 `yaml:"density"`
	ArcGapDeg     float64 `yaml:"arc_gap_deg"`
}

// AssetsConfig points at the artwork. An empty Dir selects the built-in set.
type AssetsConfig struct {
	Dir   string       `yaml:"dir"`
	Names assets.Names `yaml:"names"`
}

// StateConfig holds the persisted scheme location. Empty disables persistence.
type StateConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds log file settings.
type LoggingConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Debug      bool   `yaml:"debug"`
	StdioLog   string `yaml:"stdio_log"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Device:   "/dev/fb0",
			Interval: "1s",
		},
		Face: FaceConfig{
			Accent:        "#2979FF",
			Ink:           "#000000",
			Tolerance:     10,
			StrokeWidthDp: 16,
			EdgeInsetDp:   48,
			PivotOffsetDp: 7,
			Density:       1,
		},
		Assets: AssetsConfig{
			Names: assets.DefaultNames(),
		},
		State: StateConfig{
			Path: "/var/lib/watchface/scheme",
		},
		Logging: LoggingConfig{
			File:       "./watchface-debug.log",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is an operator-supplied flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() error {
	if v := os.Getenv("WATCHFACE_DEVICE"); v != "" {
		c.Display.Device = v
	}
	if v := os.Getenv("WATCHFACE_INTERVAL"); v != "" {
		c.Display.Interval = v
	}
	if v := os.Getenv("WATCHFACE_ACCENT"); v != "" {
		c.Face.Accent = v
	}
	if v := os.Getenv("WATCHFACE_INK"); v != "" {
		c.Face.Ink = v
	}
	if v := os.Getenv("WATCHFACE_DENSITY"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("WATCHFACE_DENSITY %q: %w", v, err)
		}
		c.Face.Density = d
	}
	if v := os.Getenv("WATCHFACE_ASSETS_DIR"); v != "" {
		c.Assets.Dir = v
	}
	if v := os.Getenv("WATCHFACE_STATE_PATH"); v != "" {
		c.State.Path = v
	}
	if v := os.Getenv("WATCHFACE_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("WATCHFACE_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("WATCHFACE_DEBUG %q: %w", v, err)
		}
		c.Logging.Debug = b
	}
	if v := os.Getenv("WATCHFACE_STDIO_LOG"); v != "" {
		c.Logging.StdioLog = v
	}
	return nil
}

// Validate checks the settings and caches derived values. Call it again
// after changing fields by hand.
func (c *Config) Validate() error {
	d, err := time.ParseDuration(c.Display.Interval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", c.Display.Interval, err)
	}
	if d <= 0 {
		return fmt.Errorf("interval must be positive, got %s", d)
	}
	c.Display.interval = d

	if _, err := parseColor(c.Face.Accent); err != nil {
		return fmt.Errorf("invalid accent color: %w", err)
	}
	if _, err := parseColor(c.Face.Ink); err != nil {
		return fmt.Errorf("invalid ink color: %w", err)
	}
	if c.Face.Tolerance < 0 || c.Face.Tolerance > 255 {
		return fmt.Errorf("tolerance must be within 0..255, got %d", c.Face.Tolerance)
	}
	if c.Face.Density <= 0 {
		return fmt.Errorf("density must be positive, got %v", c.Face.Density)
	}
	if c.Face.StrokeWidthDp < 0 || c.Face.EdgeInsetDp < 0 || c.Face.ArcGapDeg < 0 {
		return fmt.Errorf("face dimensions must not be negative")
	}
	return nil
}

// TickInterval is the parsed display interval. It is only valid after Validate.
func (c *Config) TickInterval() time.Duration {
	if c.Display.interval <= 0 {
		return time.Second
	}
	return c.Display.interval
}

// Style converts the face settings. Colors were checked by Validate.
func (c *Config) Style() (face.Style, error) {
	accent, err := parseColor(c.Face.Accent)
	if err != nil {
		return face.Style{}, fmt.Errorf("accent: %w", err)
	}
	ink, err := parseColor(c.Face.Ink)
	if err != nil {
		return face.Style{}, fmt.Errorf("ink: %w", err)
	}
	return face.Style{
		Accent:        accent,
		Ink:           ink,
		Tolerance:     uint8(c.Face.Tolerance), //nolint:gosec // bounded by Validate
		StrokeWidthDp: c.Face.StrokeWidthDp,
		EdgeInsetDp:   c.Face.EdgeInsetDp,
		PivotOffsetDp: c.Face.PivotOffsetDp,
		Density:       c.Face.Density,
		ArcGapDeg:     c.Face.ArcGapDeg,
	}, nil
}

func parseColor(hex string) (color.RGBA, error) {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
