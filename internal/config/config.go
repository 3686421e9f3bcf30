package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/headmap/internal/headmap"
	"github.com/san-kum/headmap/internal/scene"
)

const (
	DefaultShapeFile       = "head_shape.csv"
	DefaultDataFile        = "data.csv"
	DefaultPositionScale   = headmap.DefaultPositionScale
	DefaultAdvanceInterval = 0.25
	DefaultFPS             = 60
	DefaultTheme           = "cyberpunk"
)

type Config struct {
	ShapeFile       string       `yaml:"shape_file"`
	DataFile        string       `yaml:"data_file"`
	PositionScale   float64      `yaml:"position_scale"`
	RootRotation    AnglesConfig `yaml:"root_rotation"`
	Spin            AnglesConfig `yaml:"spin"`
	AdvanceInterval float64      `yaml:"advance_interval"`
	FPS             int          `yaml:"fps"`
	Theme           string       `yaml:"theme"`
}

// AnglesConfig holds Euler angles in degrees.
type AnglesConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (a AnglesConfig) Vec() scene.Vec3 { return scene.Vec3{X: a.X, Y: a.Y, Z: a.Z} }

func DefaultConfig() *Config {
	return &Config{
		ShapeFile:       DefaultShapeFile,
		DataFile:        DefaultDataFile,
		PositionScale:   DefaultPositionScale,
		RootRotation:    AnglesConfig{X: -90, Y: 90},
		Spin:            AnglesConfig{Z: 0.5},
		AdvanceInterval: DefaultAdvanceInterval,
		FPS:             DefaultFPS,
		Theme:           DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base; keys missing from the file
// keep the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.ShapeFile == "" || c.DataFile == "" {
		return fmt.Errorf("shape_file and data_file are required")
	}
	if c.PositionScale <= 0 {
		return fmt.Errorf("position_scale must be positive, got %v", c.PositionScale)
	}
	if c.AdvanceInterval <= 0 {
		return fmt.Errorf("advance_interval must be positive, got %v", c.AdvanceInterval)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}

// CloudOptions converts the placement settings for headmap.Build.
func (c *Config) CloudOptions() headmap.Options {
	opts := headmap.DefaultOptions()
	opts.PositionScale = c.PositionScale
	opts.RootRotation = c.RootRotation.Vec()
	opts.Spin = c.Spin.Vec()
	return opts
}
