package amplitude

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "amplitude.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, `
device:
  app_version: "1.70"
  platform: server
event_properties:
  service: billing
user_properties:
  tier: free
generate_insert_id: true
stamp_time: true
log_level: info
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Device.AppVersion != "1.70" || cfg.Device.Platform != "server" {
		t.Errorf("unexpected device: %+v", cfg.Device)
	}
	if cfg.EventProperties["service"] != "billing" || cfg.UserProperties["tier"] != "free" {
		t.Errorf("unexpected properties: %v %v", cfg.EventProperties, cfg.UserProperties)
	}
	if !cfg.GenerateInsertID || !cfg.StampTime || cfg.LogLevel != "info" {
		t.Errorf("unexpected flags: %+v", cfg)
	}
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
device:
  app_version: "1.70"
  platform: server
stamp_time: false
`)
	t.Setenv("AMPLITUDE_APP_VERSION", "2.0")
	t.Setenv("AMPLITUDE_STAMP_TIME", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Device.AppVersion != "2.0" {
		t.Errorf("expected env to override app_version, got %q", cfg.Device.AppVersion)
	}
	if cfg.Device.Platform != "server" {
		t.Errorf("expected YAML platform to survive, got %q", cfg.Device.Platform)
	}
	if !cfg.StampTime {
		t.Error("expected env to enable stamp_time")
	}
}

func TestLoadConfig_PathFromEnv(t *testing.T) {
	path := writeConfig(t, "log_level: error\n")
	t.Setenv(ConfigEnvVar, path)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected log level from env-selected file, got %q", cfg.LogLevel)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected no error for missing file: %v", err)
	}
	if cfg.GenerateInsertID || cfg.StampTime || len(cfg.EventProperties) != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("invalid YAML", func(t *testing.T) {
		if _, err := LoadConfig(writeConfig(t, "device: [unterminated")); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		if _, err := LoadConfig(writeConfig(t, "log_level: chatty\n")); err == nil {
			t.Error("expected log level error")
		}
	})

	t.Run("invalid env bool", func(t *testing.T) {
		t.Setenv("AMPLITUDE_GENERATE_INSERT_ID", "maybe")
		if _, err := LoadConfig(writeConfig(t, "")); err == nil {
			t.Error("expected env parse error")
		}
	})
}
