// Package config loads validator run defaults from a YAML file and from
// environment variables, so a deployment can fix its validation policy
// (mode, worker count, notice quota) without repeating flags on every
// invocation.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the subset of validator settings a user may pin outside of
// command-line flags. Zero values mean "not set"; callers fill in their own
// defaults for whatever Config leaves zero.
type Config struct {
	CountryCode       string `yaml:"countryCode"`
	ValidationMode    string `yaml:"validationMode"`
	Workers           int    `yaml:"workers"`
	MaxNoticesPerType int    `yaml:"maxNoticesPerType"`
	Format            string `yaml:"format"`
}

// defaultFileName is used when path is empty and .gtfsvalidator.yml exists
// in the current directory.
const defaultFileName = ".gtfsvalidator.yml"

// Load reads a YAML config file at path, applying .env overrides first via
// godotenv. If path is empty, Load looks for .gtfsvalidator.yml in the
// current directory; when no file is found this is not an error, and Load
// returns a Config filled only from the environment.
func Load(path string) (*Config, error) {
	// Load .env into the process environment (if present) before GTFS_*
	// variables are read below; godotenv.Load is a no-op, not an error,
	// when the file is absent.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{}
	applyEnv(cfg)

	resolvedPath := path
	if resolvedPath == "" {
		if _, err := os.Stat(defaultFileName); err != nil {
			return cfg, nil
		}
		resolvedPath = defaultFileName
	}

	data, err := os.ReadFile(resolvedPath)
	if err != nil {
		if path == "" {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", resolvedPath, err)
	}

	fileCfg := &Config{}
	if err := yaml.Unmarshal(data, fileCfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", resolvedPath, err)
	}

	merge(cfg, fileCfg)
	return cfg, nil
}

// applyEnv copies GTFS_VALIDATOR_* environment variables onto cfg. These
// take lower precedence than the YAML file, since Load applies the file on
// top of whatever applyEnv already set.
func applyEnv(cfg *Config) {
	if v := os.Getenv("GTFS_VALIDATOR_COUNTRY"); v != "" {
		cfg.CountryCode = v
	}
	if v := os.Getenv("GTFS_VALIDATOR_MODE"); v != "" {
		cfg.ValidationMode = v
	}
	if v := os.Getenv("GTFS_VALIDATOR_FORMAT"); v != "" {
		cfg.Format = v
	}
}

// merge copies every non-zero field of src onto dst.
func merge(dst, src *Config) {
	if src.CountryCode != "" {
		dst.CountryCode = src.CountryCode
	}
	if src.ValidationMode != "" {
		dst.ValidationMode = src.ValidationMode
	}
	if src.Workers != 0 {
		dst.Workers = src.Workers
	}
	if src.MaxNoticesPerType != 0 {
		dst.MaxNoticesPerType = src.MaxNoticesPerType
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
}
