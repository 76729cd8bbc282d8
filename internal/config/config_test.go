package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitialize(t *testing.T) {
	// Test that initialization doesn't error
	err := Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	if v == nil {
		t.Fatal("viper instance is nil after Initialize()")
	}
}

func TestDefaults(t *testing.T) {
	// Reset viper for test isolation
	err := Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	tests := []struct {
		key      string
		expected interface{}
		getter   func(string) interface{}
	}{
		{"copies", 30.0, func(k string) interface{} { return GetFloat64(k) }},
		{"per-sample", 8000, func(k string) interface{} { return GetInt(k) }},
		{"species", 350000, func(k string) interface{} { return GetInt(k) }},
		{"mean-copies", 30.0, func(k string) interface{} { return GetFloat64(k) }},
		{"confidence", 0.95, func(k string) interface{} { return GetFloat64(k) }},
		{"json", false, func(k string) interface{} { return GetBool(k) }},
		{"log-file", "", func(k string) interface{} { return GetString(k) }},
		{"require-version", "", func(k string) interface{} { return GetString(k) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := tt.getter(tt.key)
			if got != tt.expected {
				t.Errorf("GetXXX(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestEnvironmentBinding(t *testing.T) {
	tests := []struct {
		envVar   string
		key      string
		value    string
		expected interface{}
		getter   func(string) interface{}
	}{
		{"SDEPTH_JSON", "json", "true", true, func(k string) interface{} { return GetBool(k) }},
		{"SDEPTH_SPECIES", "species", "100000", 100000, func(k string) interface{} { return GetInt(k) }},
		{"SDEPTH_MEAN_COPIES", "mean-copies", "12.5", 12.5, func(k string) interface{} { return GetFloat64(k) }},
		{"SDEPTH_LOG_FILE", "log-file", "/tmp/sdepth.log", "/tmp/sdepth.log", func(k string) interface{} { return GetString(k) }},
	}

	for _, tt := range tests {
		t.Run(tt.envVar, func(t *testing.T) {
			oldValue := os.Getenv(tt.envVar)
			_ = os.Setenv(tt.envVar, tt.value)
			defer os.Setenv(tt.envVar, oldValue)

			// Re-initialize viper to pick up env var
			err := Initialize()
			if err != nil {
				t.Fatalf("Initialize() returned error: %v", err)
			}

			got := tt.getter(tt.key)
			if got != tt.expected {
				t.Errorf("GetXXX(%q) with %s=%s = %v, want %v", tt.key, tt.envVar, tt.value, got, tt.expected)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
species: 50000
mean-copies: 20
confidence: 0.99
json: true
`
	sdepthDir := filepath.Join(tmpDir, ".sdepth")
	if err := os.MkdirAll(sdepthDir, 0750); err != nil {
		t.Fatalf("failed to create .sdepth directory: %v", err)
	}
	configPath := filepath.Join(sdepthDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// Change to tmp directory so config file is discovered
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(origDir)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	err = Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	if got := GetInt("species"); got != 50000 {
		t.Errorf("GetInt(species) = %v, want 50000", got)
	}
	if got := GetFloat64("mean-copies"); got != 20.0 {
		t.Errorf("GetFloat64(mean-copies) = %v, want 20", got)
	}
	if got := GetFloat64("confidence"); got != 0.99 {
		t.Errorf("GetFloat64(confidence) = %v, want 0.99", got)
	}
	if got := GetBool("json"); got != true {
		t.Errorf("GetBool(json) = %v, want true", got)
	}
}

func TestConfigPrecedence(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `json: false`
	sdepthDir := filepath.Join(tmpDir, ".sdepth")
	if err := os.MkdirAll(sdepthDir, 0750); err != nil {
		t.Fatalf("failed to create .sdepth directory: %v", err)
	}
	configPath := filepath.Join(sdepthDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(origDir)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	// Test 1: Config file value (json: false)
	err = Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	if got := GetBool("json"); got != false {
		t.Errorf("GetBool(json) from config file = %v, want false", got)
	}

	// Test 2: Environment variable overrides config file
	_ = os.Setenv("SDEPTH_JSON", "true")
	defer func() { _ = os.Unsetenv("SDEPTH_JSON") }()

	err = Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	if got := GetBool("json"); got != true {
		t.Errorf("GetBool(json) with env var = %v, want true (env should override config)", got)
	}
}

func TestSetAndGet(t *testing.T) {
	err := Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	Set("test-key", "test-value")
	if got := GetString("test-key"); got != "test-value" {
		t.Errorf("GetString(test-key) = %q, want \"test-value\"", got)
	}

	Set("test-bool", true)
	if got := GetBool("test-bool"); got != true {
		t.Errorf("GetBool(test-bool) = %v, want true", got)
	}

	Set("test-int", 42)
	if got := GetInt("test-int"); got != 42 {
		t.Errorf("GetInt(test-int) = %d, want 42", got)
	}
}

func TestAllSettings(t *testing.T) {
	err := Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	Set("custom-key", "custom-value")

	settings := AllSettings()
	if settings == nil {
		t.Fatal("AllSettings() returned nil")
	}

	if val, ok := settings["custom-key"]; !ok || val != "custom-value" {
		t.Errorf("AllSettings() missing or incorrect custom-key: got %v", val)
	}
}
