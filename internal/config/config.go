// Package config loads settings for the comparison tool from defaults, an
// optional config file and IMPEDANCE_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "IMPEDANCE"

// ErrInvalidConfig indicates an unusable setting.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the comparison tool
type Config struct {
	Medium MediumConfig
	Mouth  MouthConfig
	Sweep  SweepConfig
	Output OutputConfig
}

// MediumConfig holds the propagation medium
type MediumConfig struct {
	Temperature float64 // °C
}

// MouthConfig holds the geometry and series order
type MouthConfig struct {
	Radius       float64 // m
	SphereRadius float64 // m
	Order        int
}

// SweepConfig holds the frequency grid
type SweepConfig struct {
	MinFreq   float64
	MaxFreq   float64
	Step      float64
	LaineStep float64
	ZMaxFreq  float64 // top of the pole-zero grid, sets its design rate
	Parallel  bool
}

// OutputConfig holds output and logging settings
type OutputConfig struct {
	Path     string // empty writes to stdout
	LogLevel string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("TEMPERATURE", 35.0)
	v.SetDefault("RADIUS", 0.015)
	v.SetDefault("SPHERE_RADIUS", 0.09)
	v.SetDefault("ORDER", 40)
	v.SetDefault("MIN_FREQ", 100.0)
	v.SetDefault("MAX_FREQ", 20000.0)
	v.SetDefault("STEP", 50.0)
	v.SetDefault("LAINE_STEP", 50.0)
	v.SetDefault("Z_MAX_FREQ", 50000.0)
	v.SetDefault("PARALLEL", true)
	v.SetDefault("OUTPUT", "")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load loads configuration. If path is non-empty the file is read (format
// from its extension) and must exist. Environment variables override file
// values, which override defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	// Environment variables override config file values
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var config Config
	config.Medium.Temperature = v.GetFloat64("TEMPERATURE")
	config.Mouth.Radius = v.GetFloat64("RADIUS")
	config.Mouth.SphereRadius = v.GetFloat64("SPHERE_RADIUS")
	config.Mouth.Order = v.GetInt("ORDER")
	config.Sweep.MinFreq = v.GetFloat64("MIN_FREQ")
	config.Sweep.MaxFreq = v.GetFloat64("MAX_FREQ")
	config.Sweep.Step = v.GetFloat64("STEP")
	config.Sweep.LaineStep = v.GetFloat64("LAINE_STEP")
	config.Sweep.ZMaxFreq = v.GetFloat64("Z_MAX_FREQ")
	config.Sweep.Parallel = v.GetBool("PARALLEL")
	config.Output.Path = v.GetString("OUTPUT")
	config.Output.LogLevel = v.GetString("LOG_LEVEL")

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks settings the models do not check themselves.
func (c *Config) Validate() error {
	if c.Mouth.Order < 1 {
		return fmt.Errorf("%w: order must be at least 1", ErrInvalidConfig)
	}
	if c.Mouth.Radius <= 0 || c.Mouth.SphereRadius <= 0 {
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	}
	if c.Sweep.Step <= 0 || c.Sweep.LaineStep <= 0 {
		return fmt.Errorf("%w: steps must be positive", ErrInvalidConfig)
	}
	if c.Sweep.MaxFreq <= c.Sweep.MinFreq {
		return fmt.Errorf("%w: max_freq must exceed min_freq", ErrInvalidConfig)
	}
	if c.Sweep.ZMaxFreq <= c.Sweep.MinFreq {
		return fmt.Errorf("%w: z_max_freq must exceed min_freq", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.Output.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Output.LogLevel)
	}
	return lvl, nil
}
