// Package config resolves the global runtime configuration for handoff.
package config

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// RuntimeConfig holds the resolved settings for this process.
type RuntimeConfig struct {
	// HomeDir is the user's home directory.
	HomeDir string
	// ConfigDir is where handoff keeps its own files (~/.handoff).
	ConfigDir string
	// SessionsDir is where session files live.
	SessionsDir string
	// Extension is the session file extension, without the dot.
	Extension string
}

// fileConfig is the optional on-disk override file (~/.handoff/config.yaml).
type fileConfig struct {
	SessionsDir string `yaml:"sessions_dir"`
	Extension   string `yaml:"extension"`
}

var (
	// Runtime is the global runtime configuration instance
	Runtime *RuntimeConfig
)

func init() {
	Runtime = DetectRuntime()
}

// DetectRuntime resolves the runtime configuration from the environment.
// Precedence: HANDOFF_DIR env var, then ~/.handoff/config.yaml, then the
// defaults under the user's home directory.
func DetectRuntime() *RuntimeConfig {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
		if homeDir == "" {
			homeDir = "."
		}
	}

	configDir := filepath.Join(homeDir, ".handoff")
	cfg := &RuntimeConfig{
		HomeDir:     homeDir,
		ConfigDir:   configDir,
		SessionsDir: filepath.Join(configDir, "sessions"),
		Extension:   "md",
	}

	if fc := loadFileConfig(filepath.Join(configDir, "config.yaml")); fc != nil {
		if fc.SessionsDir != "" {
			cfg.SessionsDir = fc.SessionsDir
		}
		if fc.Extension != "" {
			cfg.Extension = fc.Extension
		}
	}

	if dir := os.Getenv("HANDOFF_DIR"); dir != "" {
		cfg.SessionsDir = dir
	}

	if err := ensureDir(cfg.SessionsDir); err != nil {
		log.Printf("Warning: Failed to create sessions directory %s: %v", cfg.SessionsDir, err)
	}

	return cfg
}

func loadFileConfig(path string) *fileConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		log.Printf("Warning: Failed to parse %s: %v", path, err)
		return nil
	}
	return &fc
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
