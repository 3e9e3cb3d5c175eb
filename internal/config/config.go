// Package config provides command configuration through environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

// Output formats understood by the encrypt command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all command configuration. Command-line flags override it.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
	// LogFormat selects the log handler ("text" or "json").
	LogFormat string

	// OutputFormat selects how puzzles are printed ("text" or "json").
	OutputFormat string

	// Key is the default substitution key. Empty means a random key.
	Key string
	// KeysetFile is a Tink PRF keyset used to derive keys deterministically.
	KeysetFile string
	// Tweak separates key spaces derived from the same keyset.
	Tweak string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		LogLevel:  env.GetString("CRYPTOQUOTE_LOG_LEVEL", "warn"),
		LogFormat: env.GetString("CRYPTOQUOTE_LOG_FORMAT", FormatText),

		OutputFormat: env.GetString("CRYPTOQUOTE_OUTPUT_FORMAT", FormatText),

		Key:        env.GetString("CRYPTOQUOTE_KEY", ""),
		KeysetFile: env.GetString("CRYPTOQUOTE_KEYSET_FILE", ""),
		Tweak:      env.GetString("CRYPTOQUOTE_TWEAK", ""),
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.In("debug", "info", "warn", "error").Error("log level must be debug, info, warn or error"),
		),
		validation.Field(&c.LogFormat,
			validation.In(FormatText, FormatJSON).Error("log format must be text or json"),
		),
		validation.Field(&c.OutputFormat,
			validation.In(FormatText, FormatJSON).Error("output format must be text or json"),
		),
	)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// loadDotEnv searches for a .env file from the current directory up to the
// root directory and loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
