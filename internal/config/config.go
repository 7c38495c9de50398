package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultPort is the port the demo app listens on when PORT is not set
const DefaultPort = "3000"

var validate = validator.New()

// Config holds the runtime configuration of the demo app
type Config struct {
	// Port is the TCP port to bind, e.g. "3000"
	Port string `validate:"required,numeric"`

	// GinMode is passed to gin.SetMode (debug, release or test)
	GinMode string `validate:"oneof=debug release test"`

	// SwaggerEnabled exposes the generated API docs under /swagger/*any
	SwaggerEnabled bool
}

// Load reads an optional .env file and the process environment into a Config
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env files
func FromEnv() (*Config, error) {
	swaggerEnabled, err := parseBool("SWAGGER_ENABLED", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           get("PORT", DefaultPort),
		GinMode:        strings.ToLower(get("GIN_MODE", gin.ReleaseMode)),
		SwaggerEnabled: swaggerEnabled,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and the port range
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid configuration: PORT must be between 1 and 65535 (got %q)", c.Port)
	}
	return nil
}

// Addr returns the listen address for the configured port
func (c *Config) Addr() string {
	return ":" + c.Port
}

// loadEnvFiles loads .env files if present; a missing file is not an error
func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", file, err)
		}
		log.Printf("Loaded environment from %s", file)
	}
	return nil
}

func get(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseBool(name string, fallback bool) (bool, error) {
	raw := get(name, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid configuration: %s must be a boolean (got %q)", name, raw)
	}
	return value, nil
}
