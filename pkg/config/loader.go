// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	cerrors "github.com/cicd-ai-toolkit/pr-status-comment/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for tool-specific environment variables.
	EnvPrefix = "FORMAT_COMMENT"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = ".format-comment.yaml"

	envCI        = "CI"
	envValidated = "VALIDATED"
	envLogsDir   = EnvPrefix + "_LOGS_DIR"
	envLogLevel  = EnvPrefix + "_LOG_LEVEL"
	envAPIURL    = "GITHUB_API_URL"
)

// Loader loads configuration from files and environment.
type Loader struct {
	projectRoot string
	configFile  string
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the directory searched for the project config file.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// WithConfigFile sets an explicit config file. Unlike the project file, it
// must exist.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Config file (explicit path, else optional ./.format-comment.yaml)
// 3. Environment Variables
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if l.configFile != "" {
		if err := l.loadInto(cfg, l.configFile); err != nil {
			return nil, err
		}
	} else {
		err := l.loadInto(cfg, GetProjectConfigPath(l.projectRoot))
		// the project file is optional
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, cerrors.ConfigError("config validation failed", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path on top of the defaults.
// Environment overrides are not applied.
func (l *Loader) LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := l.loadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) loadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return cerrors.ConfigError("failed to read config file", err).WithContext("path", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cerrors.ConfigError("failed to parse config file", err).WithContext("path", path)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	cfg.CI = os.Getenv(envCI) != ""
	cfg.Validated = os.Getenv(envValidated) == "true"

	if v := os.Getenv(envLogsDir); v != "" {
		cfg.LogsDir = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	// Actions always exports GITHUB_API_URL, so it only fills an unset api_url.
	if v := os.Getenv(envAPIURL); v != "" && cfg.GitHub.APIURL == "" {
		cfg.GitHub.APIURL = v
	}
}

// GetEnvConfig returns all environment variables that start with FORMAT_COMMENT_.
func GetEnvConfig() map[string]string {
	result := make(map[string]string)

	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix+"_") {
			kv := strings.SplitN(env, "=", 2)
			if len(kv) == 2 {
				result[kv[0]] = kv[1]
			}
		}
	}

	return result
}
