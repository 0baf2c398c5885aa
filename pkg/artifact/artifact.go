// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package artifact reads the CI artifacts the status comment is built from.
//
// Every read produces a Content value carrying either the raw bytes or a typed
// error. Callers collapse failures to the empty defaults, so a missing or broken
// artifact never prevents a comment from being rendered.
package artifact

import "path/filepath"

const (
	// DefaultLogsDir is where the CI workflow stores its artifacts.
	DefaultLogsDir = "logs"
	// LintFile is the JSON lint report.
	LintFile = "lint.json"
	// BreakingChangesFile is the compatibility checker output.
	BreakingChangesFile = "breaking-changes.txt"
	// DNSFile is the DNS checker output.
	DNSFile = "check-dns.txt"
)

// Lint levels with dedicated sections. Any other level is ignored when
// bucketing but still counts as a finding.
const (
	LevelError = "error"
	LevelWarn  = "warn"
)

// LintFinding is one issue reported by the linter.
type LintFinding struct {
	FilePath    string `json:"file-path"`
	RuleID      string `json:"nsid"`
	Description string `json:"lint-description"`
	Level       string `json:"lint-level"`
}

// Bundle holds the three inputs of a comment. Absent artifacts are the empty
// slice and empty strings.
type Bundle struct {
	Lint            []LintFinding
	BreakingChanges string
	DNS             string
}

// Paths locates the three artifact files.
type Paths struct {
	Lint            string
	BreakingChanges string
	DNS             string
}

// DefaultPaths returns the standard artifact locations under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Lint:            filepath.Join(dir, LintFile),
		BreakingChanges: filepath.Join(dir, BreakingChangesFile),
		DNS:             filepath.Join(dir, DNSFile),
	}
}
