package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/commitstamp/internal/git"
	"github.com/gorewood/commitstamp/internal/output"
)

// DefaultGitTimeout bounds each git invocation unless configured otherwise.
const DefaultGitTimeout = 30 * time.Second

// Config holds settings shared by both stamping programs.
//
// Example config.yaml:
//
//	git:
//	  binary: /usr/local/bin/git
//	  timeout: 10s
//	color: never
type Config struct {
	Git   GitConfig `yaml:"git"`
	Color string    `yaml:"color"`
}

// GitConfig controls how git is invoked.
type GitConfig struct {
	Binary  string        `yaml:"binary"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Git: GitConfig{
			Binary:  git.DefaultBinary,
			Timeout: DefaultGitTimeout,
		},
		Color: output.ColorAuto,
	}
}

// Load reads the YAML config at path on top of Default.
// A missing file, or an empty path, yields the defaults.
func Load(path string) (Config, error) {
	return load(path, false)
}

// LoadRequired is Load for a path the user named explicitly:
// a missing file is a user error.
func LoadRequired(path string) (Config, error) {
	return load(path, true)
}

func load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if required {
				return cfg, output.NewUserError("config file not found: " + path)
			}
			return cfg, nil
		}
		return cfg, output.NewSystemErrorWithCause("failed to read config file: "+err.Error(), err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, output.NewUserError(fmt.Sprintf("invalid config file %s: %v", path, err))
	}

	if err := cfg.validate(); err != nil {
		return cfg, output.NewUserError(fmt.Sprintf("invalid config file %s: %v", path, err))
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Git.Binary == "" {
		c.Git.Binary = git.DefaultBinary
	}
	if c.Git.Timeout < 0 {
		return fmt.Errorf("git.timeout must not be negative, got %s", c.Git.Timeout)
	}
	if !output.ValidColorMode(c.Color) {
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
