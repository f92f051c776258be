package config

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Defaults for fields left unset in the config file.
const (
	DefaultBaseURL     = "https://gsu.campus.eab.com/api"
	DefaultService     = "NavigateService"
	DefaultDataDir     = "data/appointments"
	DefaultLogFile     = "logs/appointments.log"
	DefaultConcurrency = 50
)

// Config is the optional navigate.yaml file. Zero-value fields fall back to
// the defaults above, so a missing file behaves like an all-defaults run.
type Config struct {
	BaseURL     string     `yaml:"base_url"`
	Service     string     `yaml:"service"`
	DataDir     string     `yaml:"data_dir"`
	LogFile     string     `yaml:"log_file"`
	Concurrency int        `yaml:"concurrency"`
	SFTP        SFTPConfig `yaml:"sftp"`
}

// SFTPConfig locates the Navigate SFTP endpoint and its key material.
type SFTPConfig struct {
	Host    string `yaml:"host"`
	User    string `yaml:"user"`
	KeyFile string `yaml:"key_file"`
}

// Load reads the config at path. A missing file is not an error: it returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Service == "" {
		c.Service = DefaultService
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
}
