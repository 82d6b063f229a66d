package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const configFile = ".uikit/config.json"

// Environment overrides. They win over the project config file.
const (
	EnvPerPage    = "UIKIT_PER_PAGE"
	EnvOnEachSide = "UIKIT_ON_EACH_SIDE"
	EnvCloseDelay = "UIKIT_CLOSE_DELAY"
)

// Config holds project defaults for the pagination and dialog components.
// Zero fields fall back to the component defaults.
type Config struct {
	Pagination PaginationConfig `json:"pagination"`
	Dialog     DialogConfig     `json:"dialog"`
}

type PaginationConfig struct {
	PerPage    int  `json:"per_page,omitempty"`
	OnEachSide *int `json:"on_each_side,omitempty"`
}

type DialogConfig struct {
	// CloseDelayMS is the close animation delay in milliseconds.
	CloseDelayMS *int `json:"close_delay_ms,omitempty"`
}

// CloseDelay returns the configured delay and whether one is set.
func (d DialogConfig) CloseDelay() (time.Duration, bool) {
	if d.CloseDelayMS == nil {
		return 0, false
	}
	return time.Duration(*d.CloseDelayMS) * time.Millisecond, true
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Resolve loads the project config and applies environment overrides.
// Priority: env > project-local config > component defaults.
func Resolve(baseDir string) (*Config, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return nil, err
	}

	if cfg.Pagination.PerPage < 0 {
		return nil, fmt.Errorf("pagination.per_page: must be positive, got %d", cfg.Pagination.PerPage)
	}
	if v := cfg.Pagination.OnEachSide; v != nil && *v < 0 {
		return nil, fmt.Errorf("pagination.on_each_side: must not be negative, got %d", *v)
	}
	if v := cfg.Dialog.CloseDelayMS; v != nil && *v < 0 {
		return nil, fmt.Errorf("dialog.close_delay_ms: must not be negative, got %d", *v)
	}

	if v, ok, err := envInt(EnvPerPage); err != nil {
		return nil, err
	} else if ok {
		if v <= 0 {
			return nil, fmt.Errorf("%s: must be positive, got %d", EnvPerPage, v)
		}
		cfg.Pagination.PerPage = v
	}
	if v, ok, err := envInt(EnvOnEachSide); err != nil {
		return nil, err
	} else if ok {
		if v < 0 {
			return nil, fmt.Errorf("%s: must not be negative, got %d", EnvOnEachSide, v)
		}
		cfg.Pagination.OnEachSide = &v
	}
	if s := os.Getenv(EnvCloseDelay); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvCloseDelay, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("%s: must not be negative, got %s", EnvCloseDelay, d)
		}
		ms := int(d / time.Millisecond)
		cfg.Dialog.CloseDelayMS = &ms
	}

	return cfg, nil
}

func envInt(name string) (int, bool, error) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", name, err)
	}
	return v, true, nil
}
