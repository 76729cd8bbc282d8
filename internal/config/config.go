package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton.
// Should be called once at application startup.
func Initialize() error {
	v = viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths, in order of precedence:
	// 1. Walk up from CWD to find a project .sdepth/ directory, so the
	//    tool picks up shared lab defaults from anywhere in a project tree.
	cwd, err := os.Getwd()
	if err == nil {
		for dir := cwd; dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			sdepthDir := filepath.Join(dir, ".sdepth")
			if info, err := os.Stat(sdepthDir); err == nil && info.IsDir() {
				v.AddConfigPath(sdepthDir)
				break
			}
		}
	}

	// 2. User config directory (~/.config/sdepth/)
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "sdepth"))
	}

	// 3. Home directory (~/.sdepth/)
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".sdepth"))
	}

	// Automatic environment variable binding; env vars take precedence
	// over the config file. E.g. SDEPTH_JSON, SDEPTH_MEAN_COPIES.
	v.SetEnvPrefix("SDEPTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Experiment defaults. Species count and mean copies match a typical
	// phage display library; per-sample is a typical picking depth.
	v.SetDefault("copies", 30.0)
	v.SetDefault("per-sample", 8000)
	v.SetDefault("species", 350000)
	v.SetDefault("mean-copies", 30.0)
	v.SetDefault("confidence", 0.95)

	// Tool behavior defaults.
	v.SetDefault("json", false)
	v.SetDefault("log-file", "")
	v.SetDefault("require-version", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found - this is ok, we'll use defaults
	}

	return nil
}

// GetString retrieves a string configuration value
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool retrieves a boolean configuration value
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt retrieves an integer configuration value
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat64 retrieves a float configuration value
func GetFloat64(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// Set sets a configuration value
func Set(key string, value interface{}) {
	if v != nil {
		v.Set(key, value)
	}
}

// AllSettings returns all configuration settings as a map
func AllSettings() map[string]interface{} {
	if v == nil {
		return map[string]interface{}{}
	}
	return v.AllSettings()
}
