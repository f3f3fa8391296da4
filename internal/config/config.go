package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGenerationTimeout = 60 * time.Second
	DefaultHistoryLimit      = 10
	DefaultLogLevel          = "info"
)

type Config struct {
	Provider string `yaml:"provider" env:"DIARY_PROVIDER"`
	APIKey   string `yaml:"api_key,omitempty" env:"DIARY_API_KEY"`
	Model    string `yaml:"model" env:"DIARY_MODEL"`
	BaseURL  string `yaml:"base_url,omitempty" env:"DIARY_BASE_URL"`

	// RulesPath replaces the built-in skill rule table when set
	RulesPath string `yaml:"rules_path,omitempty" env:"DIARY_RULES_PATH"`

	// ExportDir is where saved diaries are written. Empty means the
	// working directory.
	ExportDir string `yaml:"export_dir,omitempty" env:"DIARY_EXPORT_DIR"`

	LogLevel          string        `yaml:"log_level,omitempty" env:"DIARY_LOG_LEVEL"`
	GenerationTimeout time.Duration `yaml:"generation_timeout,omitempty" env:"DIARY_GENERATION_TIMEOUT"`
	HistoryLimit      int           `yaml:"history_limit,omitempty" env:"DIARY_HISTORY_LIMIT"`
}

func DefaultConfig() *Config {
	p := Providers[0]
	return &Config{
		Provider:          p.ID,
		Model:             p.DefaultModel,
		LogLevel:          DefaultLogLevel,
		GenerationTimeout: DefaultGenerationTimeout,
		HistoryLimit:      DefaultHistoryLimit,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "diary"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file and applies environment overrides.
// It returns nil, nil when there is no config file and no provider in
// the environment, which means the setup wizard should run.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load for an explicit file path
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if strings.TrimSpace(os.Getenv("DIARY_PROVIDER")) == "" {
			return nil, nil
		}
		cfg.Model = ""
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
		return cfg.withDefaults(), nil
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults fills fields a partial file or environment left empty
func (c *Config) withDefaults() *Config {
	if c.Model == "" {
		if p := GetProvider(c.Provider); p != nil {
			c.Model = p.DefaultModel
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.GenerationTimeout <= 0 {
		c.GenerationTimeout = DefaultGenerationTimeout
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
	return c
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
