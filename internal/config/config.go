package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModelDt   = 0.05
	DefaultThreshold = 25.0
	DefaultHorizon   = 4.0
	DefaultWidth     = 1400.0
	DefaultHeight    = 1050.0
)

type Config struct {
	ModelDt   float64      `yaml:"model_dt"`
	Threshold float64      `yaml:"threshold"`
	Horizon   float64      `yaml:"horizon"`
	Figure    FigureConfig `yaml:"figure"`
}

// FigureConfig sets the rendered figure dimensions in points.
type FigureConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		ModelDt:   DefaultModelDt,
		Threshold: DefaultThreshold,
		Horizon:   DefaultHorizon,
		Figure: FigureConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.ModelDt <= 0 {
		return fmt.Errorf("model_dt must be positive, got %g", c.ModelDt)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %g", c.Horizon)
	}
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		return fmt.Errorf("figure dimensions must be positive, got %gx%g",
			c.Figure.Width, c.Figure.Height)
	}
	return nil
}

// HorizonSteps returns the number of optimizer iterations expected per
// group for the configured horizon.
func (c *Config) HorizonSteps() int {
	return int(math.Round(c.Horizon / c.ModelDt))
}
