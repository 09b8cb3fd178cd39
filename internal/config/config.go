package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/winentity/internal/record"
	"github.com/vvka-141/winentity/pkg/winentity"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override the config file.
const (
	EnvShell        = "WINENTITY_SHELL"
	EnvTimeout      = "WINENTITY_TIMEOUT"
	EnvTrailing     = "WINENTITY_TRAILING"
	EnvRetryAttempt = "WINENTITY_RETRY_ATTEMPTS"
)

type ShellConfig struct {
	Executable string `yaml:"executable,omitempty"`
	Timeout    string `yaml:"timeout,omitempty"`
}

type RecordsConfig struct {
	Trailing string `yaml:"trailing,omitempty"`
}

type RetryConfig struct {
	MaxAttempts  *int   `yaml:"max_attempts,omitempty"`
	InitialDelay string `yaml:"initial_delay,omitempty"`
}

type ProjectConfig struct {
	Shell   ShellConfig   `yaml:"shell"`
	Records RecordsConfig `yaml:"records"`
	Retry   RetryConfig   `yaml:"retry"`
}

const ConfigFileName = "winentity.yaml"

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Settings are the effective values after defaults, file and environment
// have been merged.
type Settings struct {
	Shell             string
	Timeout           time.Duration
	Trailing          record.TrailingPolicy
	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Shell:             winentity.DefaultShell,
		Timeout:           winentity.DefaultCommandTimeout,
		Trailing:          record.TrailingDrop,
		RetryMaxAttempts:  winentity.DefaultRetryMaxAttempts,
		RetryInitialDelay: winentity.DefaultRetryInitialDelay,
	}
}

// Resolve merges defaults, cfg (may be nil) and environment variables.
// Priority (highest to lowest): environment > config file > defaults.
// Invalid values are reported as ErrInvalidConfig.
func Resolve(cfg *ProjectConfig) (Settings, error) {
	s := DefaultSettings()

	if cfg != nil {
		if err := s.apply(cfg.Shell.Executable, cfg.Shell.Timeout, cfg.Records.Trailing, cfg.Retry.InitialDelay, "winentity.yaml"); err != nil {
			return Settings{}, err
		}
		if cfg.Retry.MaxAttempts != nil {
			if *cfg.Retry.MaxAttempts < 0 {
				return Settings{}, fmt.Errorf("retry.max_attempts must not be negative: %w", winentity.ErrInvalidConfig)
			}
			s.RetryMaxAttempts = *cfg.Retry.MaxAttempts
		}
	}

	if err := s.apply(os.Getenv(EnvShell), os.Getenv(EnvTimeout), os.Getenv(EnvTrailing), "", "environment"); err != nil {
		return Settings{}, err
	}
	if v := strings.TrimSpace(os.Getenv(EnvRetryAttempt)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Settings{}, fmt.Errorf("%s=%q is not a non-negative integer: %w", EnvRetryAttempt, v, winentity.ErrInvalidConfig)
		}
		s.RetryMaxAttempts = n
	}

	return s, nil
}

func (s *Settings) apply(shell, timeout, trailing, initialDelay, source string) error {
	if v := strings.TrimSpace(shell); v != "" {
		s.Shell = v
	}
	if v := strings.TrimSpace(timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid timeout %q in %s: %w", v, source, winentity.ErrInvalidConfig)
		}
		s.Timeout = d
	}
	if v := strings.TrimSpace(trailing); v != "" {
		p, err := record.ParseTrailingPolicy(v)
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		s.Trailing = p
	}
	if v := strings.TrimSpace(initialDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return fmt.Errorf("invalid retry.initial_delay %q in %s: %w", v, source, winentity.ErrInvalidConfig)
		}
		s.RetryInitialDelay = d
	}
	return nil
}
