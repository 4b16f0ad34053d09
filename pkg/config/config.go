// Package config loads the optional .makedist.yaml configuration. Every
// field has a default matching the conventional project layout, so the tool
// runs without any config file at all.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
	"github.com/makedist/makedist/pkg/env"
)

// DefaultPath is where LoadConfig looks when no --config flag is given.
const DefaultPath = ".makedist.yaml"

// Config represents the complete makedist configuration.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Stage   StageConfig   `yaml:"stage"`
	Dist    DistConfig    `yaml:"dist"`
	Bundle  BundleConfig  `yaml:"bundle"`
	Archive ArchiveConfig `yaml:"archive"`
	Release ReleaseConfig `yaml:"release"`
}

// ProjectConfig locates the product metadata.
type ProjectConfig struct {
	Manifest string `yaml:"manifest"`
}

// StageConfig controls the staging copy.
type StageConfig struct {
	Source string `yaml:"source"`
	Dir    string `yaml:"dir"`
}

// DistConfig locates the distribution output root, which holds both the
// per-platform bundle directories and the finished archives.
type DistConfig struct {
	Dir string `yaml:"dir"`
}

// BundleConfig describes how to invoke the external bundler. The bundler is
// run as "<command> run <script_prefix><platform-id>".
type BundleConfig struct {
	Command      string `yaml:"command"`
	ScriptPrefix string `yaml:"script_prefix"`
}

// ArchiveConfig describes the disk-image tool used for the macOS target.
type ArchiveConfig struct {
	DMGTool string `yaml:"dmg_tool"`
	DMGSpec string `yaml:"dmg_spec"`
}

// ReleaseConfig contains release publishing configuration.
type ReleaseConfig struct {
	GitHub GitHubConfig `yaml:"github"`
}

// GitHubConfig contains GitHub-specific release configuration.
type GitHubConfig struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Draft bool   `yaml:"draft"`
}

// Default returns the built-in configuration matching the conventional
// project layout.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{Manifest: "package.json"},
		Stage:   StageConfig{Source: ".", Dir: "tempapp"},
		Dist:    DistConfig{Dir: "dist"},
		Bundle:  BundleConfig{Command: "npm", ScriptPrefix: "package-"},
		Archive: ArchiveConfig{
			DMGTool: "node_modules/.bin/appdmg",
			DMGSpec: "resources/pack-dmg-spec.json",
		},
	}
}

// LoadConfig loads and parses a configuration file. A missing file at the
// default path is not an error: the defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return Default(), nil
	}

	if err := env.SubstituteValues(file.Docs[0].Body); err != nil {
		return nil, fmt.Errorf("environment variable substitution failed: %w", err)
	}

	cfg := Default()
	if err := yaml.NodeToValue(file.Docs[0].Body, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves a configuration to a file.
func SaveConfig(path string, config *Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Restrictive permissions since values may come from env substitution
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
