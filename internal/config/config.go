// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the mp3extract tool's configuration.
type Config struct {
	Defaults struct {
		Format          string   `yaml:"format"`
		Verbose         bool     `yaml:"verbose"`
		Debug           bool     `yaml:"debug"`
		NoColor         bool     `yaml:"no_color"`
		Recursive       bool     `yaml:"recursive"`
		ExcludePatterns []string `yaml:"exclude_patterns"`
	} `yaml:"defaults"`

	// Extraction bounds the byte-level decoder operates under.
	// mp3meta.Extract applies MaxScanDeep, MaxFramesScan, VBRThreshold
	// and FollowTLEN. MaxHeadBytes and CaptureAlbumArt are loaded and
	// validated but not read by the pipeline: the head window is always
	// bytesource.MaxHeadBytes, and captured art is always handed to the
	// album-art collaborator.
	Extraction struct {
		MaxHeadBytes    int  `yaml:"max_head_bytes"`
		MaxScanDeep     int  `yaml:"max_scan_deep"`
		MaxFramesScan   int  `yaml:"max_frames_scan"`
		VBRThreshold    int  `yaml:"vbr_threshold"`
		FollowTLEN      bool `yaml:"follow_tlen"`
		CaptureAlbumArt bool `yaml:"capture_album_art"`
	} `yaml:"extraction"`

	// Profiles for different invocation scenarios (e.g. a quiet,
	// colorless profile for scripting or pre-commit use).
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile is a named set of output settings, looked up with GetProfile.
type Profile struct {
	Format      string `yaml:"format"`
	Verbose     bool   `yaml:"verbose"`
	NoColor     bool   `yaml:"no_color"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{
		Profiles: make(map[string]Profile),
	}

	cfg.Defaults.Format = "text"
	cfg.Defaults.Verbose = false
	cfg.Defaults.Debug = false
	cfg.Defaults.NoColor = false
	cfg.Defaults.Recursive = false

	cfg.Extraction.MaxHeadBytes = 5 * 1024 * 1024
	cfg.Extraction.MaxScanDeep = 16768
	cfg.Extraction.MaxFramesScan = 512
	cfg.Extraction.VBRThreshold = 16
	cfg.Extraction.FollowTLEN = true
	cfg.Extraction.CaptureAlbumArt = true

	cfg.Profiles["quiet"] = Profile{
		Format:      "text",
		Verbose:     false,
		NoColor:     true,
		Description: "Concise output suitable for scripting or pre-commit use",
	}

	if configPath == "" {
		return cfg, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ValidateConfig rejects extraction bounds that would defeat the
// decoder's own safety limits.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if cfg.Extraction.MaxHeadBytes <= 0 {
		return fmt.Errorf("extraction.max_head_bytes must be positive")
	}
	if cfg.Extraction.MaxScanDeep <= 0 {
		return fmt.Errorf("extraction.max_scan_deep must be positive")
	}
	if cfg.Extraction.MaxFramesScan <= 0 {
		return fmt.Errorf("extraction.max_frames_scan must be positive")
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile() string {
	if fileExists("mp3extract.yaml") {
		return "mp3extract.yaml"
	}
	if fileExists("mp3extract.yml") {
		return "mp3extract.yml"
	}
	if fileExists(".mp3extract.yaml") {
		return ".mp3extract.yaml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(xdgConfig, "mp3extract", "config.yaml")
	if fileExists(candidate) {
		return candidate
	}
	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns a default configuration — callers should not crash on a
// missing or malformed config file.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// GetProfile returns a profile by name, or nil if not found.
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	if err != nil {
		return false
	}
	return !info.IsDir()
}
