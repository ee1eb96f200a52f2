// Package config loads the console configuration.
//
// Configuration is read in layers: an optional .env file in the working
// directory, then a YAML file under the OS config directory
// (~/.config/shrovate/config.yaml on Linux), then environment
// variables. The GEMINI_API_KEY variable always wins for the
// credential.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

const (
	// appDir is the directory name under os.UserConfigDir().
	appDir = "shrovate"

	// configFile is the YAML configuration filename.
	configFile = "config.yaml"

	// apiKeyEnv is the credential environment variable.
	apiKeyEnv = "GEMINI_API_KEY"
)

// Config holds the console configuration.
type Config struct {
	// APIKey is the Gemini API credential. Its absence is a fatal
	// configuration error for any remote call.
	APIKey string `yaml:"api_key,omitempty"`

	// Addr is the console listen address.
	Addr string `yaml:"addr,omitempty"`

	// HelperURL overrides the local control daemon base URL.
	HelperURL string `yaml:"helper_url,omitempty"`
}

// Load reads the configuration from the default locations.
func Load() (*Config, error) {
	// A .env in the working directory is a convenience for local runs;
	// its absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{Addr: "127.0.0.1:8080"}

	base, err := os.UserConfigDir()
	if err == nil {
		path := filepath.Join(base, appDir, configFile)
		if data, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if key := os.Getenv(apiKeyEnv); key != "" {
		cfg.APIKey = key
	}
	return cfg, nil
}
