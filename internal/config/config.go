package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// API settings
	API APIConfig `yaml:"api"`

	// Project list settings
	Projects ProjectsConfig `yaml:"projects"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"` // Toggl Track API v9 base URL
}

type ProjectsConfig struct {
	Path           string `yaml:"path"`            // Path to the tracker config JSON
	FallbackClient string `yaml:"fallback_client"` // Client name that sorts after all others
}

// DefaultConfigPath returns ~/.config/togglcli/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "togglcli", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "togglcli", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		API: APIConfig{
			BaseURL: "https://api.track.toggl.com/api/v9",
		},
		Projects: ProjectsConfig{
			Path:           filepath.Join(homeDir, ".config", "togglcli", "projects.json"),
			FallbackClient: "Lunatech",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates all necessary directories (for the tracker config)
func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(filepath.Dir(c.Projects.Path), 0755)
}
