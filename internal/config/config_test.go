package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestFromEnvDefaults tests the defaults applied when nothing is set
func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("SWAGGER_ENABLED", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want %q", cfg.GinMode, "release")
	}
	if cfg.SwaggerEnabled {
		t.Error("SwaggerEnabled = true, want false")
	}
	if got := cfg.Addr(); got != ":3000" {
		t.Errorf("Addr() = %q, want %q", got, ":3000")
	}
}

// TestFromEnvValidation tests rejection of malformed values
func TestFromEnvValidation(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		mode    string
		swagger string
		wantErr bool
	}{
		{"custom port", "8081", "debug", "true", false},
		{"mode is case-insensitive", "3000", "TEST", "", false},
		{"non-numeric port", "http", "", "", true},
		{"port out of range", "70000", "", "", true},
		{"port zero", "0", "", "", true},
		{"unknown gin mode", "3000", "verbose", "", true},
		{"bad swagger flag", "3000", "", "maybe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("GIN_MODE", tt.mode)
			t.Setenv("SWAGGER_ENABLED", tt.swagger)

			_, err := FromEnv()
			if (err != nil) != tt.wantErr {
				t.Errorf("FromEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoadEnvFile tests that values from a .env file are picked up
func TestLoadEnvFile(t *testing.T) {
	// godotenv does not override variables that are already set
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("GIN_MODE", "")
	t.Setenv("SWAGGER_ENABLED", "")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PORT=4123\n"), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "4123" {
		t.Errorf("Port = %q, want %q", cfg.Port, "4123")
	}
}

// TestLoadMissingEnvFile tests that a missing .env file is ignored
func TestLoadMissingEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("SWAGGER_ENABLED", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
	}
}
