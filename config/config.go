// Package config loads the optional YAML configuration file and resolves
// the effective settings from flags, environment, and file. Environment
// values are passed in as parameters — the environment is only read in
// main.
package config

import (
	"fmt"
	"os"

	"github.com/fwojciec/imagine"
	"gopkg.in/yaml.v3"
)

// Config holds process configuration. Zero values mean "not set"; Resolve
// fills in precedence and defaults.
type Config struct {
	// APIKey is the Gemini API credential. Required after resolution.
	APIKey string `yaml:"api_key"`

	// Model overrides the default image model ID.
	Model string `yaml:"model"`

	// OutputDir is where artifacts are written. Empty means the client's
	// default under the OS temp directory.
	OutputDir string `yaml:"output_dir"`

	// HTTPListen is the artifact server address (e.g. ":8080"). Empty
	// disables the HTTP server.
	HTTPListen string `yaml:"http_listen"`

	// TimeoutMs bounds each provider round trip. Zero means the client's
	// default.
	TimeoutMs int `yaml:"timeout_ms"`
}

// Load reads a YAML config file. An empty path yields a zero Config; a
// named file that cannot be read or parsed is an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve merges flag values over the environment credential over the file.
// A missing API key after resolution is a configuration error: the server
// cannot become ready without a credential.
func Resolve(file, flags Config, envAPIKey string) (Config, error) {
	cfg := file
	if flags.APIKey != "" {
		cfg.APIKey = flags.APIKey
	} else if envAPIKey != "" {
		cfg.APIKey = envAPIKey
	}
	if flags.Model != "" {
		cfg.Model = flags.Model
	}
	if flags.OutputDir != "" {
		cfg.OutputDir = flags.OutputDir
	}
	if flags.HTTPListen != "" {
		cfg.HTTPListen = flags.HTTPListen
	}
	if flags.TimeoutMs != 0 {
		cfg.TimeoutMs = flags.TimeoutMs
	}
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("config: GEMINI_API_KEY not set (use -api-key, the environment variable, or api_key in the config file): %w", imagine.ErrConfiguration)
	}
	return cfg, nil
}
