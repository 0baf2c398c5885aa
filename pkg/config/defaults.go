// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"path/filepath"

	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/artifact"
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		LogsDir:   artifact.DefaultLogsDir,
		Artifacts: DefaultArtifacts(),
		LogLevel:  "warn",
		GitHub:    DefaultGitHub(),
	}
}

// DefaultArtifacts returns the artifact names the CI workflow writes.
func DefaultArtifacts() ArtifactsConfig {
	return ArtifactsConfig{
		Lint:            artifact.LintFile,
		BreakingChanges: artifact.BreakingChangesFile,
		DNS:             artifact.DNSFile,
	}
}

// DefaultGitHub returns default GitHub settings.
func DefaultGitHub() GitHubConfig {
	return GitHubConfig{
		TokenEnv: "GITHUB_TOKEN",
		Marker:   "format-comment",
	}
}

// GetProjectConfigPath returns the project config file path.
func GetProjectConfigPath(projectRoot string) string {
	if projectRoot == "" {
		projectRoot = "."
	}
	return filepath.Join(projectRoot, ProjectConfigFile)
}
