// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, environment
// variables, or must be provided via CLI flags.
type Config struct {
	// Paths
	Job     string `json:"job,omitempty"`     // Path to job posting file (text or HTML)
	Profile string `json:"profile,omitempty"` // Path to profile snapshot JSON
	Out     string `json:"out,omitempty"`     // Output path for the rendered document

	// Candidate info
	Name     string `json:"name,omitempty"`     // Candidate name
	Email    string `json:"email,omitempty"`    // Candidate email
	Location string `json:"location,omitempty"` // Candidate location

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Override for the standard-tier model
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Compiler    string `json:"compiler,omitempty"`     // LaTeX compiler binary
	WorkDir     string `json:"work_dir,omitempty"`     // Root for per-request compile dirs
	Port        int    `json:"port,omitempty"`         // HTTP server port
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed pipeline output

	// Timeouts in seconds; zero uses the stage defaults
	SynthesisTimeout int `json:"synthesis_timeout,omitempty"` // Generative request deadline
	RenderTimeout    int `json:"render_timeout,omitempty"`    // Compiler deadline
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Required-field checks happen after merging, in the CLI layer.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SynthesisTimeout < 0 {
		return fmt.Errorf("config error: 'synthesis_timeout' must be non-negative")
	}
	if c.RenderTimeout < 0 {
		return fmt.Errorf("config error: 'render_timeout' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Compiler == "" {
		result.Compiler = defaults.Compiler
	}
	if result.WorkDir == "" {
		result.WorkDir = defaults.WorkDir
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SynthesisTimeout == 0 {
		result.SynthesisTimeout = defaults.SynthesisTimeout
	}
	if result.RenderTimeout == 0 {
		result.RenderTimeout = defaults.RenderTimeout
	}
	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}

// ApplyEnv fills still-empty fields from environment variables. Flag and
// config-file values take precedence over the environment.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = os.Getenv("GEMINI_MODEL")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}
