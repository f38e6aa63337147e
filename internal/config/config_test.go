package config

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	restore := overrideConfigEnv(tempDir)
	defer restore()

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	_ = os.Remove(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.MinPrice != 0 || cfg.MaxPrice != 400 {
		t.Errorf("range = [%v, %v], want [0, 400]", cfg.MinPrice, cfg.MaxPrice)
	}
	if cfg.SuggestedPrice != DefaultSuggestedPrice {
		t.Errorf("SuggestedPrice = %v, want %v", cfg.SuggestedPrice, DefaultSuggestedPrice)
	}
	if cfg.StepCount != DefaultStepCount {
		t.Errorf("StepCount = %d, want %d", cfg.StepCount, DefaultStepCount)
	}
	if cfg.ResetOnRangeChange {
		t.Error("ResetOnRangeChange should default to false")
	}
	if cfg.WindowW != DefaultWidth || cfg.WindowH != DefaultHeight {
		t.Errorf("window = %dx%d, want %dx%d", cfg.WindowW, cfg.WindowH, DefaultWidth, DefaultHeight)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, got error: %v", path, err)
	}
}

func TestApplyRuntimeDefaults(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(t *testing.T, c Config)
	}{
		{
			name: "inverted range resets bounds",
			in:   Config{MinPrice: 500, MaxPrice: 100, SuggestedPrice: 200},
			check: func(t *testing.T, c Config) {
				if c.MinPrice != 0 || c.MaxPrice != 400 {
					t.Fatalf("range = [%v, %v]", c.MinPrice, c.MaxPrice)
				}
			},
		},
		{
			name: "suggested outside range falls back to max",
			in:   Config{MinPrice: 0, MaxPrice: 250.4, SuggestedPrice: 900},
			check: func(t *testing.T, c Config) {
				if c.SuggestedPrice != 250 {
					t.Fatalf("SuggestedPrice = %v, want 250", c.SuggestedPrice)
				}
			},
		},
		{
			name: "rounded max above max is clamped",
			in:   Config{MinPrice: 0, MaxPrice: 99.6, SuggestedPrice: -1},
			check: func(t *testing.T, c Config) {
				if c.SuggestedPrice != 99.6 {
					t.Fatalf("SuggestedPrice = %v, want 99.6", c.SuggestedPrice)
				}
			},
		},
		{
			name: "NaN max resets bounds",
			in:   Config{MinPrice: 0, MaxPrice: math.NaN(), SuggestedPrice: 200},
			check: func(t *testing.T, c Config) {
				if c.MinPrice != 0 || c.MaxPrice != 400 || c.SuggestedPrice != 200 {
					t.Fatalf("got [%v, %v] suggested %v", c.MinPrice, c.MaxPrice, c.SuggestedPrice)
				}
			},
		},
		{
			name: "infinite max resets bounds",
			in:   Config{MinPrice: 0, MaxPrice: math.Inf(1), SuggestedPrice: 200},
			check: func(t *testing.T, c Config) {
				if c.MaxPrice != 400 {
					t.Fatalf("MaxPrice = %v, want 400", c.MaxPrice)
				}
			},
		},
		{
			name: "rounded max below min is clamped",
			in:   Config{MinPrice: 10.2, MaxPrice: 10.4, SuggestedPrice: 50},
			check: func(t *testing.T, c Config) {
				if c.SuggestedPrice != 10.2 {
					t.Fatalf("SuggestedPrice = %v, want 10.2", c.SuggestedPrice)
				}
			},
		},
		{
			name: "NaN suggested falls back",
			in:   Config{MinPrice: 0, MaxPrice: 300, SuggestedPrice: math.NaN()},
			check: func(t *testing.T, c Config) {
				if c.SuggestedPrice != 300 {
					t.Fatalf("SuggestedPrice = %v, want 300", c.SuggestedPrice)
				}
			},
		},
		{
			name: "step count bounds",
			in:   Config{MaxPrice: 10, StepCount: 1000},
			check: func(t *testing.T, c Config) {
				if c.StepCount != MaxStepCount {
					t.Fatalf("StepCount = %d, want %d", c.StepCount, MaxStepCount)
				}
			},
		},
		{
			name: "narrow window widened",
			in:   Config{MaxPrice: 10, WindowW: 100},
			check: func(t *testing.T, c Config) {
				if c.WindowW != MinWindowWidth {
					t.Fatalf("WindowW = %d, want %d", c.WindowW, MinWindowWidth)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.applyRuntimeDefaults()
			tt.check(t, c)
		})
	}
}

func overrideConfigEnv(tempDir string) func() {
	originals := map[string]string{
		"APPDATA":         os.Getenv("APPDATA"),
		"LOCALAPPDATA":    os.Getenv("LOCALAPPDATA"),
		"USERPROFILE":     os.Getenv("USERPROFILE"),
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"HOME":            os.Getenv("HOME"),
	}

	if runtime.GOOS == "windows" {
		os.Setenv("APPDATA", tempDir)
		os.Setenv("LOCALAPPDATA", tempDir)
		os.Setenv("USERPROFILE", tempDir)
	} else {
		xdg := filepath.Join(tempDir, "xdg")
		_ = os.MkdirAll(xdg, 0o755)
		os.Setenv("XDG_CONFIG_HOME", xdg)
		os.Setenv("HOME", tempDir)
	}

	return func() {
		for k, v := range originals {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}
}
