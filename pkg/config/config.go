// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for format-comment.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Project Config: ./.format-comment.yaml, or the file passed with --config
// 3. Environment Variables: CI, VALIDATED, FORMAT_COMMENT_*, GITHUB_API_URL
package config

import (
	"path/filepath"

	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/artifact"
)

// Config represents the complete application configuration.
type Config struct {
	// CI is true when the CI environment variable is non-empty.
	CI bool `yaml:"-"`
	// Validated is true only when VALIDATED is exactly "true".
	Validated bool `yaml:"-"`

	LogsDir   string          `yaml:"logs_dir"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	LogLevel  string          `yaml:"log_level"` // debug, info, warn, error
	GitHub    GitHubConfig    `yaml:"github"`
}

// ArtifactsConfig holds the artifact file names, relative to LogsDir.
type ArtifactsConfig struct {
	Lint            string `yaml:"lint"`
	BreakingChanges string `yaml:"breaking_changes"`
	DNS             string `yaml:"dns"`
}

// GitHubConfig contains settings for posting the comment to a pull request.
type GitHubConfig struct {
	TokenEnv string `yaml:"token_env"` // e.g., "GITHUB_TOKEN"
	APIURL   string `yaml:"api_url"`   // GitHub Enterprise API URL
	Marker   string `yaml:"marker"`    // identifies the sticky comment
}

// ArtifactPaths resolves the artifact file names against LogsDir.
func (c *Config) ArtifactPaths() artifact.Paths {
	return artifact.Paths{
		Lint:            filepath.Join(c.LogsDir, c.Artifacts.Lint),
		BreakingChanges: filepath.Join(c.LogsDir, c.Artifacts.BreakingChanges),
		DNS:             filepath.Join(c.LogsDir, c.Artifacts.DNS),
	}
}
