package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional user configuration. All fields have sensible
// zero-value behavior; a missing config file is not an error.
type Config struct {
	// Catalog is a path to a question catalog JSON file. Empty means the
	// embedded catalog.
	Catalog string `yaml:"catalog"`

	// Shuffle controls the default presentation order. Nil means shuffled.
	Shuffle *bool `yaml:"shuffle"`

	// Topics adds or overrides topic-key → domain-label mappings.
	Topics map[string][]string `yaml:"topics"`
}

// ShuffleEnabled resolves the shuffle default (shuffled unless disabled).
func (c Config) ShuffleEnabled() bool {
	return c.Shuffle == nil || *c.Shuffle
}

// Load reads YAML config from path. A missing file yields the zero Config.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file path:
// 1. GAIL_PRAC_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/gail-prac/config.yaml
// 3. ~/.config/gail-prac/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("GAIL_PRAC_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gail-prac", "config.yaml"), nil
}
