// Package config loads game tuning from embedded defaults overlaid by an
// optional yaml file on disk.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Screen  ScreenConfig   `yaml:"screen"`
	Game    GameConfig     `yaml:"game"`
	Players []PlayerConfig `yaml:"players"`
	Rope    RopeConfig     `yaml:"rope"`
	Items   ItemsConfig    `yaml:"items"`
	Physics PhysicsConfig  `yaml:"physics"`
	Logging LoggingConfig  `yaml:"logging"`
}

type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type GameConfig struct {
	TimeLimit float64 `yaml:"time_limit"` // seconds per player
	DT        float64 `yaml:"dt"`
	// Layout names an embedded layout; empty picks one at random.
	Layout     string `yaml:"layout"`
	Seed       int64  `yaml:"seed"` // 0 seeds from the clock
	AssetsDir  string `yaml:"assets_dir"`
	ScriptsDir string `yaml:"scripts_dir"`
}

type PlayerConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	FireKey string  `yaml:"fire_key"`
}

// RopeConfig is in pixels, degrees and seconds.
type RopeConfig struct {
	MaxAngle       float64 `yaml:"max_angle"`
	SwingSpeed     float64 `yaml:"swing_speed"`
	RestLength     float64 `yaml:"rest_length"`
	MaxLength      float64 `yaml:"max_length"`
	ExtendSpeed    float64 `yaml:"extend_speed"`
	RetractSpeed   float64 `yaml:"retract_speed"`
	ArriveDistance float64 `yaml:"arrive_distance"`
	WinchOffsetX   float64 `yaml:"winch_offset_x"`
	WinchOffsetY   float64 `yaml:"winch_offset_y"`
	Radius         float64 `yaml:"radius"`
	Density        float64 `yaml:"density"`
	Friction       float64 `yaml:"friction"`
	Elasticity     float64 `yaml:"elasticity"`
}

type ItemsConfig struct {
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Density    float64 `yaml:"density"`
}

type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"` // units/s^2, downward
	Iterations   int     `yaml:"iterations"`
	HitThreshold float64 `yaml:"hit_threshold"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load parses the embedded defaults, then overlays the file at path when
// path is non-empty. Only fields present in the file are overwritten.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parse defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Game.DT <= 0:
		return fmt.Errorf("config: game.dt must be positive, got %v", c.Game.DT)
	case c.Game.TimeLimit <= 0:
		return fmt.Errorf("config: game.time_limit must be positive, got %v", c.Game.TimeLimit)
	case len(c.Players) == 0:
		return fmt.Errorf("config: at least one player is required")
	case c.Rope.MaxLength <= 0 || c.Rope.ExtendSpeed <= 0 || c.Rope.RetractSpeed <= 0:
		return fmt.Errorf("config: rope lengths and speeds must be positive")
	case c.Rope.Radius <= 0 || c.Rope.Density <= 0:
		return fmt.Errorf("config: rope radius and density must be positive")
	}
	return nil
}

// WriteYAML writes the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
