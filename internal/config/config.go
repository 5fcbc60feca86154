// Package config holds the CLI's layered settings (defaults, config.yaml,
// LINEAR_* environment, flags), the stored API key and project-local
// defaults from .linear.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/linear-cli/linear/internal/debug"
)

const (
	// EnvPrefix namespaces every environment override (LINEAR_JSON, ...).
	EnvPrefix = "LINEAR"

	appDirName = "linear-cli"
)

var v *viper.Viper

// Initialize builds the settings instance. It is safe to call repeatedly;
// each call starts from a clean slate.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("json", false)
	v.SetDefault("api-endpoint", "https://api.linear.app/graphql")
	v.SetDefault("lookup-limit", 250)
	v.SetDefault("issue-limit", 50)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("team", "")

	v.SetDefault("otel-enabled", false)
	v.SetDefault("otel-stdout", false)
	// The OTLP endpoints also honour the standard OpenTelemetry variables.
	_ = v.BindEnv("otel-endpoint", "LINEAR_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("otel-metrics-endpoint", "LINEAR_OTEL_METRICS_ENDPOINT", "OTEL_EXPORTER_OTLP_METRICS_ENDPOINT")

	dir, err := Dir()
	if err != nil {
		// No home directory: run on defaults and environment only.
		debug.Logf("config: %v\n", err)
		return nil
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	debug.Logf("config: loaded %s\n", path)
	return nil
}

// ResetForTesting drops the settings instance.
func ResetForTesting() {
	v = nil
}

// Dir returns the directory holding config.yaml and config.toml.
// LINEAR_CONFIG_DIR overrides the platform default.
func Dir() (string, error) {
	if dir := os.Getenv("LINEAR_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// ConfigFileUsed returns the config.yaml path that was loaded, if any.
func ConfigFileUsed() string {
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set overrides a value, e.g. from an explicitly passed flag.
func Set(key string, value interface{}) {
	if v != nil {
		v.Set(key, value)
	}
}

// AllSettings returns the merged settings.
func AllSettings() map[string]interface{} {
	if v == nil {
		return map[string]interface{}{}
	}
	return v.AllSettings()
}
