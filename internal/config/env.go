package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every override, e.g. SLIDERS_MAX_PRICE.
const EnvPrefix = "SLIDERS"

// EnvConfig holds optional environment overrides. Nil fields were not set.
type EnvConfig struct {
	// Env: SLIDERS_MIN_PRICE
	MinPrice *float64 `envconfig:"MIN_PRICE"`
	// Env: SLIDERS_MAX_PRICE
	MaxPrice *float64 `envconfig:"MAX_PRICE"`
	// Env: SLIDERS_SUGGESTED_PRICE
	SuggestedPrice *float64 `envconfig:"SUGGESTED_PRICE"`
	// Env: SLIDERS_STEP_COUNT
	StepCount *int `envconfig:"STEP_COUNT"`
	// Env: SLIDERS_RESET_ON_RANGE_CHANGE
	ResetOnRangeChange *bool `envconfig:"RESET_ON_RANGE_CHANGE"`
	// Env: SLIDERS_LOG_LEVEL
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadFromEnv reads the SLIDERS_ overrides.
func LoadFromEnv() (EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EnvConfig{}, err
	}
	return env, nil
}

// Apply copies every set override onto c and re-normalizes it.
func (e EnvConfig) Apply(c *Config) {
	if e.MinPrice != nil {
		c.MinPrice = *e.MinPrice
	}
	if e.MaxPrice != nil {
		c.MaxPrice = *e.MaxPrice
	}
	if e.SuggestedPrice != nil {
		c.SuggestedPrice = *e.SuggestedPrice
	}
	if e.StepCount != nil {
		c.StepCount = *e.StepCount
	}
	if e.ResetOnRangeChange != nil {
		c.ResetOnRangeChange = *e.ResetOnRangeChange
	}
	if e.LogLevel != "" {
		c.LogLevel = e.LogLevel
	}
	c.applyRuntimeDefaults()
}

// LoadWithEnv loads the config file, then the optional .env file, then
// applies environment overrides on top.
func LoadWithEnv(envPath string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if err := LoadDotEnv(envPath); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	env, err := LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	env.Apply(cfg)
	return cfg, nil
}
