// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Validator validates configuration.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates a configuration.
func (v *Validator) Validate(cfg *Config) error {
	if err := v.ValidateArtifacts(cfg); err != nil {
		return err
	}
	if err := v.ValidateGitHub(&cfg.GitHub); err != nil {
		return err
	}
	return v.ValidateLogLevel(cfg.LogLevel)
}

// ValidateArtifacts checks the logs directory and artifact names.
func (v *Validator) ValidateArtifacts(cfg *Config) error {
	if cfg.LogsDir == "" {
		return &ValidationError{
			Field:   "logs_dir",
			Message: "must not be empty",
		}
	}

	names := []struct{ field, value string }{
		{"artifacts.lint", cfg.Artifacts.Lint},
		{"artifacts.breaking_changes", cfg.Artifacts.BreakingChanges},
		{"artifacts.dns", cfg.Artifacts.DNS},
	}
	for _, n := range names {
		if n.value == "" {
			return &ValidationError{
				Field:   n.field,
				Message: "must not be empty",
			}
		}
		if filepath.IsAbs(n.value) {
			return &ValidationError{
				Field:   n.field,
				Value:   n.value,
				Message: "must be relative to logs_dir",
			}
		}
	}

	return nil
}

// ValidateGitHub validates the comment posting settings.
func (v *Validator) ValidateGitHub(cfg *GitHubConfig) error {
	if cfg.TokenEnv == "" {
		return &ValidationError{
			Field:   "github.token_env",
			Message: "must be set (token field is not allowed)",
		}
	}
	if cfg.Marker == "" || strings.Contains(cfg.Marker, "-->") {
		return &ValidationError{
			Field:   "github.marker",
			Value:   cfg.Marker,
			Message: "must be non-empty and must not contain '-->'",
		}
	}
	if cfg.APIURL != "" {
		u, err := url.Parse(cfg.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &ValidationError{
				Field:   "github.api_url",
				Value:   cfg.APIURL,
				Message: "must be an absolute URL",
			}
		}
	}
	return nil
}

// ValidateLogLevel validates the log level.
func (v *Validator) ValidateLogLevel(level string) error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	for _, l := range validLogLevels {
		if strings.EqualFold(level, l) {
			return nil
		}
	}
	return &ValidationError{
		Field:   "log_level",
		Value:   level,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error for %s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}
