package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/urban-mobility-tools/gpsfix-to-geojson/trips"
)

// Default output destinations.
const (
	DefaultGeoJSONPath = "trips.geojson"
	DefaultRejectsPath = "rejects.log"
)

// Load reads the configuration. When path is empty the default
// locations are tried and a missing file is not an error (input can
// still arrive via environment or flags). An explicit path must exist.
func Load(path string) (Config, error) {
	// Load .env into the environment (ignore if missing).
	_ = godotenv.Load()

	var cfg Config
	data, err := readConfigFile(path)
	if err != nil {
		return cfg, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return data, nil
	}
	for _, p := range []string{"config.yml", "configs/config.yml"} {
		if data, err := os.ReadFile(p); err == nil {
			return data, nil
		}
	}
	return nil, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GPSFIX_INPUT"); v != "" {
		cfg.Input.Source = v
	}
	if v := os.Getenv("GPSFIX_DELIMITER"); v != "" {
		cfg.Input.Delimiter = v
	}
	if v := os.Getenv("GPSFIX_OUTPUT"); v != "" {
		cfg.Output.GeoJSONPath = v
	}
	if v := os.Getenv("GPSFIX_REJECTS"); v != "" {
		cfg.Output.RejectsPath = v
	}
	if v := os.Getenv("GPSFIX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Output.GeoJSONPath == "" {
		cfg.Output.GeoJSONPath = DefaultGeoJSONPath
	}
	if cfg.Output.RejectsPath == "" {
		cfg.Output.RejectsPath = DefaultRejectsPath
	}
	if cfg.Thresholds.MaxGapSeconds == 0 {
		cfg.Thresholds.MaxGapSeconds = trips.DefaultMaxGapSeconds
	}
	if cfg.Thresholds.MaxJumpKM == 0 {
		cfg.Thresholds.MaxJumpKM = trips.DefaultMaxJumpKM
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
