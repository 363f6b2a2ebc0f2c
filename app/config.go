package app

import (
	"fmt"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/ui"
	"gopkg.in/yaml.v3"
)

// PowerPreference selects the adapter class.
type PowerPreference string

const (
	HighPerformance PowerPreference = "high-performance"
	LowPower        PowerPreference = "low-power"
)

func (p PowerPreference) gpu() gputypes.PowerPreference {
	if p == LowPower {
		return gputypes.PowerPreferenceLowPower
	}
	return gputypes.PowerPreferenceHighPerformance
}

// PresentMode selects how frames reach the screen.
type PresentMode string

// Immediate presents without waiting for vertical blank.
const Immediate PresentMode = "immediate"

func (p PresentMode) gpu() gputypes.PresentMode {
	return gputypes.PresentModeImmediate
}

// Config holds window and device options.
type Config struct {
	Title           string          `yaml:"title"`
	Width           uint32          `yaml:"width"`
	Height          uint32          `yaml:"height"`
	PowerPreference PowerPreference `yaml:"power_preference"`
	PresentMode     PresentMode     `yaml:"present_mode"`
	// MaxFrameLatency is the number of frames the swapchain may queue.
	MaxFrameLatency int `yaml:"max_frame_latency"`
	// ClearColor is the hex colour each frame is cleared to.
	ClearColor string `yaml:"clear_color"`
}

// DefaultConfig returns the default options.
func DefaultConfig() Config {
	return Config{
		Title:           "ui",
		Width:           800,
		Height:          600,
		PowerPreference: HighPerformance,
		PresentMode:     Immediate,
		MaxFrameLatency: 2,
		ClearColor:      "#000000",
	}
}

// WithTitle returns a copy with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy with the initial inner size set.
func (c Config) WithSize(width, height uint32) Config {
	c.Width, c.Height = width, height
	return c
}

// WithPowerPreference returns a copy with the adapter preference set.
func (c Config) WithPowerPreference(p PowerPreference) Config {
	c.PowerPreference = p
	return c
}

// WithClearColor returns a copy with the clear colour set.
func (c Config) WithClearColor(hex string) Config {
	c.ClearColor = hex
	return c
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: size %dx%d must be at least 1x1", ErrInvalidConfig, c.Width, c.Height)
	}
	switch c.PowerPreference {
	case HighPerformance, LowPower:
	default:
		return fmt.Errorf("%w: unknown power preference %q", ErrInvalidConfig, c.PowerPreference)
	}
	if c.PresentMode != Immediate {
		return fmt.Errorf("%w: unknown present mode %q", ErrInvalidConfig, c.PresentMode)
	}
	if c.MaxFrameLatency < 1 {
		return fmt.Errorf("%w: max frame latency %d must be positive", ErrInvalidConfig, c.MaxFrameLatency)
	}
	if _, err := ui.ParseHex(c.ClearColor); err != nil {
		return fmt.Errorf("%w: clear color: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Clear returns the parsed clear colour.
func (c Config) Clear() ui.Color {
	return ui.Hex(c.ClearColor)
}

// ParseConfig reads YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
