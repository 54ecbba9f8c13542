package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Seed modes for TasksConfig.Seed.
const (
	SeedExamples = "examples"
	SeedEmpty    = "empty"
)

type Config struct {
	Version   string          `yaml:"version" json:"version"`
	Server    ServerConfig    `yaml:"server" json:"server"`
	Tasks     TasksConfig     `yaml:"tasks" json:"tasks"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type TasksConfig struct {
	// Seed selects the startup collection: "examples" loads the three
	// example tasks, "empty" starts blank. The store is in-memory
	// only, so every restart returns to this state.
	Seed string `yaml:"seed" json:"seed"`

	// DefaultSort names the strategy applied by the UI when the user
	// has not picked one: date|name|creation|completion|priority.
	DefaultSort string `yaml:"default_sort" json:"default_sort"`

	// Locale drives title collation for name sorting.
	Locale string `yaml:"locale" json:"locale"`
}

type TelemetryConfig struct {
	// MaxEvents caps the in-memory event log; 0 is unbounded.
	MaxEvents int `yaml:"max_events" json:"max_events"`
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Tasks.Seed == "" {
		c.Tasks.Seed = SeedExamples
	}
	if c.Tasks.DefaultSort == "" {
		c.Tasks.DefaultSort = "date"
	}
	if c.Tasks.Locale == "" {
		c.Tasks.Locale = "en"
	}
	if c.Telemetry.MaxEvents == 0 {
		c.Telemetry.MaxEvents = 10000
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	return &r, nil
}
