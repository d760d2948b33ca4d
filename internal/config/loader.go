package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = ".devsalary.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadFile merges a YAML file into cfg. Keys missing from the file keep their current values.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrConfigNotFound
		}
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// FindConfigFile returns the first existing config file:
// the explicit path, ./.devsalary.yaml, then <XDG config>/devsalary/config.yaml.
// It returns "" when none exists.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := []string{DefaultConfigFile, filepath.Join(XDGConfigDir(), "config.yaml")}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// LoadEnv reads envFile (if it exists) into the process environment and
// picks up the SuperJob API key. Variables already set are not overridden.
func LoadEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.SuperJob.APIKey = key
	}
	return nil
}
