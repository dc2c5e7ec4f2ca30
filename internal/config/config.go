// Package config loads the .gitcz.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/evanhongo/gitcz/internal/convention"
)

// FileName is the settings file gitcz looks for.
const FileName = ".gitcz.yaml"

// ErrNotFound is returned by Discover when no settings file exists between
// the start directory and the filesystem root.
var ErrNotFound = errors.New(FileName + " not found")

var repoPattern = regexp.MustCompile(`^[^/\s]+/[^/\s]+$`)

// Config holds the process-wide settings. They are read once at startup and
// treated as immutable afterwards.
type Config struct {
	// GithubRepo identifies the hosting repository as "owner/name".
	// Required: changelog commit links cannot be built without it.
	GithubRepo string `yaml:"github_repo"`

	// Convention selects the commit convention. Empty means the default.
	Convention string `yaml:"convention"`
}

// Load reads and validates the settings file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Convention == "" {
		cfg.Convention = convention.DefaultName
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the required settings. A missing or malformed github_repo
// is a startup-fatal condition for every command that touches commit links.
func (c *Config) Validate() error {
	if c.GithubRepo == "" {
		return fmt.Errorf("please add the key github_repo to your %s config file: %w",
			FileName, convention.ErrRepoNotConfigured)
	}
	if !repoPattern.MatchString(c.GithubRepo) {
		return fmt.Errorf("github_repo %q is not of the form owner/name", c.GithubRepo)
	}
	return nil
}

// Discover walks up from startDir looking for the settings file.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Write saves cfg to path. Used by `gitcz init` to seed a new settings file.
func Write(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
