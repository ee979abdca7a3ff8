package arbor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// RunConfig configures [Run] and [Player].
type RunConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`

	// Animation names the animation to play. Empty plays the first one;
	// "*" plays every animation at once.
	Animation string  `toml:"animation" yaml:"animation"`
	Speed     float32 `toml:"speed" yaml:"speed"`
	Mix       float32 `toml:"mix" yaml:"mix"`

	// Background is a "#rrggbb" or "#aarrggbb" clear color.
	Background string `toml:"background" yaml:"background"`

	MaxUpdatePasses int  `toml:"max_update_passes" yaml:"max_update_passes"`
	Debug           bool `toml:"debug" yaml:"debug"`
	ShowFPS         bool `toml:"show_fps" yaml:"show_fps"`

	// ScreenshotDir receives PNG captures taken with the S key.
	ScreenshotDir string `toml:"screenshot_dir" yaml:"screenshot_dir"`
}

// DefaultRunConfig returns the configuration used for unset fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:           "arbor",
		Width:           640,
		Height:          480,
		Speed:           1,
		Mix:             1,
		Background:      "#1a1a26",
		MaxUpdatePasses: DefaultMaxUpdatePasses,
		ScreenshotDir:   "screenshots",
	}
}

var errConfigFormat = errors.New("arbor: unsupported config format")

// LoadRunConfig decodes data as "toml" or "yaml" over the defaults.
func LoadRunConfig(data []byte, format string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	var err error
	switch strings.ToLower(format) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return cfg, fmt.Errorf("%w: %q", errConfigFormat, format)
	}
	if err != nil {
		return cfg, fmt.Errorf("arbor: decode %s config: %w", format, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadRunConfigFile reads path and picks the decoder from its extension.
func LoadRunConfigFile(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultRunConfig(), err
	}
	return LoadRunConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Validate reports the first out-of-range field.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("arbor: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Mix < 0 || c.Mix > 1 {
		return fmt.Errorf("arbor: mix %v outside [0, 1]", c.Mix)
	}
	if c.MaxUpdatePasses < 0 {
		return fmt.Errorf("arbor: max_update_passes %d must not be negative", c.MaxUpdatePasses)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed background, or black when it is empty.
func (c RunConfig) BackgroundColor() Color {
	col, err := ParseHexColor(c.Background)
	if err != nil {
		return ColorBlack
	}
	return col
}

// ParseHexColor parses "#rrggbb" or "#aarrggbb". The empty string is
// opaque black.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 0:
		return ColorBlack, nil
	case 6:
		h = "ff" + h
	case 8:
	default:
		return Color{}, fmt.Errorf("arbor: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("arbor: invalid color %q", s)
	}
	return ColorFromARGB(uint32(v)), nil
}
