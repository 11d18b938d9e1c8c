// Package config loads rvmkit's configuration: global settings from
// ~/.rvmkit/config.yaml and the per-project rvmkit.yaml manifest.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig holds global rvmkit settings from ~/.rvmkit/config.yaml.
type GlobalConfig struct {
	RVM      RVMConfig   `yaml:"rvm"`
	Platform string      `yaml:"platform,omitempty"`
	Sudo     bool        `yaml:"sudo,omitempty"`
	Debug    DebugConfig `yaml:"debug"`
}

// RVMConfig holds settings for talking to the rvm binary.
type RVMConfig struct {
	// Path overrides where rvm lives. Empty means PATH lookup with a
	// ~/.rvm/bin fallback.
	Path string `yaml:"path,omitempty"`
	// TimeoutSeconds bounds each rvm invocation.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// DebugConfig holds debug log settings.
type DebugConfig struct {
	// RetentionDays is how many days of debug log files to keep.
	RetentionDays int `yaml:"retention_days,omitempty"`
}

// DefaultGlobalConfig returns the default global configuration.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		RVM:   RVMConfig{TimeoutSeconds: 30},
		Debug: DebugConfig{RetentionDays: 14},
	}
}

// LoadGlobal builds the global configuration: defaults, then
// ~/.rvmkit/config.yaml, then RVMKIT_* environment overrides. A missing
// or malformed file means defaults; config never blocks a query.
func LoadGlobal() (*GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	path := filepath.Join(GlobalConfigDir(), "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, cfg)
	}
	applyEnv(cfg)

	return cfg, nil
}

// applyEnv layers RVMKIT_* variables over cfg.
func applyEnv(cfg *GlobalConfig) {
	if path := os.Getenv("RVMKIT_RVM_PATH"); path != "" {
		cfg.RVM.Path = path
	}
	if platform := os.Getenv("RVMKIT_PLATFORM"); platform != "" {
		cfg.Platform = platform
	}
}

// GlobalConfigDir returns the path to ~/.rvmkit.
func GlobalConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".rvmkit")
	}
	return filepath.Join(homeDir, ".rvmkit")
}

// DebugLogDir returns the directory for debug log files.
func DebugLogDir() string {
	return filepath.Join(GlobalConfigDir(), "debug")
}
