package amplitude

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/valeronm/amplitude-api/adapters"
)

// ConfigEnvVar names the environment variable LoadConfig falls back to when
// no path is given.
const ConfigEnvVar = "AMPLITUDE_CONFIG"

// Config holds the defaults a Builder applies to every event.
//
// A YAML file looks like:
//
//	device:
//	  app_version: "1.70"
//	  platform: server
//	event_properties:
//	  service: billing
//	generate_insert_id: true
//	stamp_time: true
//	log_level: info
//
// Device fields may also come from AMPLITUDE_APP_VERSION,
// AMPLITUDE_PLATFORM and so on.
type Config struct {
	Device           DeviceInfo     `yaml:"device" envPrefix:"AMPLITUDE_"`
	EventProperties  map[string]any `yaml:"event_properties"`
	UserProperties   map[string]any `yaml:"user_properties"`
	GenerateInsertID bool           `yaml:"generate_insert_id" env:"AMPLITUDE_GENERATE_INSERT_ID"`
	StampTime        bool           `yaml:"stamp_time" env:"AMPLITUDE_STAMP_TIME"`
	LogLevel         string         `yaml:"log_level" env:"AMPLITUDE_LOG_LEVEL"`
}

// LoadConfig reads the YAML config at path and overlays AMPLITUDE_*
// environment variables. If path is empty, AMPLITUDE_CONFIG is used. A
// missing file is not an error; the environment alone is used.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse amplitude config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return Config{}, fmt.Errorf("read amplitude config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := adapters.ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("amplitude config: %w", err)
	}
	return cfg, nil
}
