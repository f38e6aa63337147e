// Package config defines the PriceSliders configuration format and helpers for
// loading or saving it to disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/edward-ap/pricesliders/internal/sliders"
)

const (
	// AppID is the stable application identifier used for config storage.
	AppID = "pricesliders"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "PriceSliders"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultSuggestedPrice matches the demo screen the sliders were built for.
	DefaultSuggestedPrice = 200
	// DefaultStepCount is used by the generic stepped slider.
	DefaultStepCount = 5
	// MaxStepCount keeps anchors far enough apart to be draggable.
	MaxStepCount = 50
	// DefaultWidth is the preferred window width when no persisted value exists.
	DefaultWidth = 520
	// DefaultHeight is the preferred window height when no persisted value exists.
	DefaultHeight = 360
	// MinWindowWidth keeps the price label readable at both track ends.
	MinWindowWidth = 320
	// DefaultLogLevel is used when the level is empty.
	DefaultLogLevel = "info"
)

// Config aggregates the slider construction parameters and window geometry.
// Slider positions are deliberately not stored.
type Config struct {
	MinPrice           float64 `json:"minPrice"`
	MaxPrice           float64 `json:"maxPrice"`
	SuggestedPrice     float64 `json:"suggestedPrice"`
	StepCount          int     `json:"stepCount"`
	ResetOnRangeChange bool    `json:"resetOnRangeChange,omitempty"`
	WindowW            int     `json:"windowW"`
	WindowH            int     `json:"windowH"`
	LogLevel           string  `json:"logLevel,omitempty"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from disk, writing a default file on first run.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			// Try saving an initial config, but still return defaults even if it fails.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// SaveWindowSize re-reads the file on disk and stores only the window size,
// so environment overrides applied at startup never leak into the file.
func SaveWindowSize(w, h int) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.WindowW, cfg.WindowH = w, h
	cfg.applyRuntimeDefaults()
	return cfg.Save()
}

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

// Default builds an in-memory config populated with safe defaults.
func Default() *Config {
	cfg := &Config{
		MinPrice:       sliders.DefaultMinPrice,
		MaxPrice:       sliders.DefaultMaxPrice,
		SuggestedPrice: DefaultSuggestedPrice,
		StepCount:      DefaultStepCount,
		WindowW:        DefaultWidth,
		WindowH:        DefaultHeight,
		LogLevel:       DefaultLogLevel,
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes config values after a load or override so
// the slider constructors always receive valid input.
func (c *Config) applyRuntimeDefaults() {
	if !validPriceRange(c.MinPrice, c.MaxPrice) {
		c.MinPrice = sliders.DefaultMinPrice
		c.MaxPrice = sliders.DefaultMaxPrice
	}
	bounds := sliders.Range{Min: c.MinPrice, Max: c.MaxPrice}
	if !bounds.Contains(c.SuggestedPrice) {
		// rounding can step outside a narrow non-integer range
		c.SuggestedPrice = bounds.Clamp(sliders.RoundHalfEven(c.MaxPrice))
	}
	if c.StepCount < 1 {
		c.StepCount = DefaultStepCount
	}
	if c.StepCount > MaxStepCount {
		c.StepCount = MaxStepCount
	}
	if c.WindowW == 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowW < MinWindowWidth {
		c.WindowW = MinWindowWidth
	}
	if c.WindowH <= 0 {
		c.WindowH = DefaultHeight
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func validPriceRange(min, max float64) bool {
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return false
	}
	_, err := sliders.NewRange(min, max)
	return err == nil
}
