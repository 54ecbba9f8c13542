package config

import (
	"os"
	"strconv"
)

// ApplyEnv overlays environment variables on top of the loaded
// configuration. Unset variables leave the config untouched.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("TASKS_SEED"); v == SeedExamples || v == SeedEmpty {
		c.Tasks.Seed = v
	}
	if v := os.Getenv("TASKS_DEFAULT_SORT"); v != "" {
		c.Tasks.DefaultSort = v
	}
	if v := os.Getenv("TASKS_LOCALE"); v != "" {
		c.Tasks.Locale = v
	}
	if v := getEnvInt("TELEMETRY_MAX_EVENTS"); v > 0 {
		c.Telemetry.MaxEvents = v
	}
}

func getEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
