// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/config"
	cerrors "github.com/cicd-ai-toolkit/pr-status-comment/pkg/errors"
)

// clearEnv unsets every variable the loader reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CI", "VALIDATED", "FORMAT_COMMENT_LOGS_DIR", "FORMAT_COMMENT_LOG_LEVEL", "GITHUB_API_URL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// TestDefaultConfig tests the default configuration.
func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.LogsDir != "logs" {
		t.Errorf("Expected default logs dir 'logs', got '%s'", cfg.LogsDir)
	}

	paths := cfg.ArtifactPaths()
	if paths.Lint != filepath.Join("logs", "lint.json") {
		t.Errorf("Expected lint path logs/lint.json, got '%s'", paths.Lint)
	}
	if paths.BreakingChanges != filepath.Join("logs", "breaking-changes.txt") {
		t.Errorf("Expected breaking changes path logs/breaking-changes.txt, got '%s'", paths.BreakingChanges)
	}
	if paths.DNS != filepath.Join("logs", "check-dns.txt") {
		t.Errorf("Expected dns path logs/check-dns.txt, got '%s'", paths.DNS)
	}

	if cfg.CI || cfg.Validated {
		t.Error("Expected CI and Validated to default to false")
	}

	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("Expected token env 'GITHUB_TOKEN', got '%s'", cfg.GitHub.TokenEnv)
	}
}

// TestLoadFromPath tests loading config from a file.
func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
logs_dir: ci-output
log_level: debug
artifacts:
  lint: lexicons.json
github:
  marker: lexicon-status
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := config.NewLoader().LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogsDir != "ci-output" {
		t.Errorf("Expected logs dir 'ci-output', got '%s'", cfg.LogsDir)
	}
	if cfg.Artifacts.Lint != "lexicons.json" {
		t.Errorf("Expected lint artifact 'lexicons.json', got '%s'", cfg.Artifacts.Lint)
	}
	// untouched keys keep their defaults
	if cfg.Artifacts.DNS != "check-dns.txt" {
		t.Errorf("Expected default dns artifact, got '%s'", cfg.Artifacts.DNS)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("Expected default token env, got '%s'", cfg.GitHub.TokenEnv)
	}
	if cfg.GitHub.Marker != "lexicon-status" {
		t.Errorf("Expected marker 'lexicon-status', got '%s'", cfg.GitHub.Marker)
	}
}

// TestLoadFromPathInvalid tests loading an unparseable config file.
func TestLoadFromPathInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("logs_dir: [unterminated"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := config.NewLoader().LoadFromPath(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid config, got nil")
	}
	if !cerrors.IsType(err, cerrors.ErrConfig) {
		t.Errorf("Expected config error, got %v", err)
	}
}

// TestLoadWithoutProjectFile tests that a missing project file is not an error.
func TestLoadWithoutProjectFile(t *testing.T) {
	clearEnv(t)

	cfg, err := config.NewLoader().WithProjectRoot(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("Expected no error without a project file, got %v", err)
	}
	if cfg.LogsDir != "logs" {
		t.Errorf("Expected default logs dir, got '%s'", cfg.LogsDir)
	}
}

// TestLoadExplicitFileMissing tests that an explicit --config path must exist.
func TestLoadExplicitFileMissing(t *testing.T) {
	clearEnv(t)

	_, err := config.NewLoader().WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	if err == nil {
		t.Error("Expected error for missing explicit config file, got nil")
	}
}

// TestLoadProjectFile tests loading .format-comment.yaml from the project root.
func TestLoadProjectFile(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	content := "logs_dir: artifacts\nlog_level: info\n"
	if err := os.WriteFile(filepath.Join(tmpDir, config.ProjectConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := config.NewLoader().WithProjectRoot(tmpDir).Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.LogsDir != "artifacts" {
		t.Errorf("Expected logs dir 'artifacts', got '%s'", cfg.LogsDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level 'info', got '%s'", cfg.LogLevel)
	}
}

// TestLoadWithEnvOverrides tests environment variable overrides.
func TestLoadWithEnvOverrides(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, config.ProjectConfigFile), []byte("logs_dir: from-file\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("CI", "1")
	t.Setenv("VALIDATED", "true")
	t.Setenv("FORMAT_COMMENT_LOGS_DIR", "from-env")
	t.Setenv("FORMAT_COMMENT_LOG_LEVEL", "DEBUG")
	t.Setenv("GITHUB_API_URL", "https://github.example.com/api/v3")

	cfg, err := config.NewLoader().WithProjectRoot(tmpDir).Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.CI {
		t.Error("Expected CI to be true when CI is set")
	}
	if !cfg.Validated {
		t.Error("Expected Validated to be true when VALIDATED=true")
	}
	if cfg.LogsDir != "from-env" {
		t.Errorf("Expected logs dir 'from-env', got '%s'", cfg.LogsDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.LogLevel)
	}
	if cfg.GitHub.APIURL != "https://github.example.com/api/v3" {
		t.Errorf("Expected api url from env, got '%s'", cfg.GitHub.APIURL)
	}
}

// TestValidatedRequiresExactTrue tests that only the literal "true" counts.
func TestValidatedRequiresExactTrue(t *testing.T) {
	for _, value := range []string{"TRUE", "1", "yes", "false"} {
		t.Run(value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("VALIDATED", value)

			cfg, err := config.NewLoader().WithProjectRoot(t.TempDir()).Load()
			if err != nil {
				t.Fatalf("Failed to load config: %v", err)
			}
			if cfg.Validated {
				t.Errorf("Expected Validated=false for VALIDATED=%q", value)
			}
		})
	}
}

// TestLoadWithEnvInvalidLogLevel tests that an invalid env log level fails validation.
func TestLoadWithEnvInvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORMAT_COMMENT_LOG_LEVEL", "trace")

	_, err := config.NewLoader().WithProjectRoot(t.TempDir()).Load()
	if err == nil {
		t.Fatal("Expected error for invalid log level in env, got nil")
	}
	if !cerrors.ShouldBlockCI(err) {
		t.Errorf("Expected a CI-blocking config error, got %v", err)
	}
}

// TestValidator tests the configuration validator.
func TestValidator(t *testing.T) {
	v := config.NewValidator()

	if err := v.Validate(config.DefaultConfig()); err != nil {
		t.Errorf("Valid config should pass validation, got error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty logs dir", func(c *config.Config) { c.LogsDir = "" }},
		{"empty lint name", func(c *config.Config) { c.Artifacts.Lint = "" }},
		{"absolute dns name", func(c *config.Config) { c.Artifacts.DNS = "/tmp/check-dns.txt" }},
		{"invalid log level", func(c *config.Config) { c.LogLevel = "trace" }},
		{"empty token env", func(c *config.Config) { c.GitHub.TokenEnv = "" }},
		{"marker closes comment", func(c *config.Config) { c.GitHub.Marker = "x -->" }},
		{"relative api url", func(c *config.Config) { c.GitHub.APIURL = "api.github.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			if err := v.Validate(cfg); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

// TestGetEnvConfig tests getting environment config.
func TestGetEnvConfig(t *testing.T) {
	t.Setenv("FORMAT_COMMENT_LOGS_DIR", "out")

	env := config.GetEnvConfig()
	if env["FORMAT_COMMENT_LOGS_DIR"] != "out" {
		t.Errorf("Expected FORMAT_COMMENT_LOGS_DIR=out, got '%s'", env["FORMAT_COMMENT_LOGS_DIR"])
	}
}
