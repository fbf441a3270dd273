// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Run modes. The mode selects the matching-service provider; which other
// fields are required depends on it.
const (
	ModeDeepSeek = "deepseek"
	ModeCustom   = "custom"
	ModeGemini   = "gemini"
	ModeDemo     = "demo"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	Mode    string `json:"mode,omitempty" validate:"omitempty,oneof=deepseek custom gemini demo"` // Matching-service provider
	APIKey  string `json:"api_key,omitempty"`                                                     // Access credential for non-demo modes
	BaseURL string `json:"base_url,omitempty" validate:"omitempty,url"`                           // Endpoint address for custom mode
	Model   string `json:"model,omitempty"`                                                       // Model identifier
	OutDir  string `json:"out_dir,omitempty"`                                                     // Directory for run artifacts
	Verbose bool   `json:"verbose,omitempty"`                                                     // Print detailed debug information
}

// DefaultConfig returns the configuration used when nothing is provided.
// Demo mode keeps the tool usable offline with no credential.
func DefaultConfig() Config {
	return Config{
		Mode:   ModeDemo,
		OutDir: "out",
	}
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values, including the
// mode-conditional requirements the struct tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("config error: field %q failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	switch c.Mode {
	case ModeDeepSeek, ModeGemini:
		if c.APIKey == "" {
			return fmt.Errorf("config error: mode %q requires an API key", c.Mode)
		}
	case ModeCustom:
		if c.APIKey == "" {
			return fmt.Errorf("config error: mode %q requires an API key", c.Mode)
		}
		if c.BaseURL == "" {
			return fmt.Errorf("config error: mode %q requires a base URL", c.Mode)
		}
		if c.Model == "" {
			return fmt.Errorf("config error: mode %q requires a model", c.Mode)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
