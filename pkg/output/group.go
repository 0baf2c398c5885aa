// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package output

import "github.com/cicd-ai-toolkit/pr-status-comment/pkg/artifact"

// FindingsByFile groups findings by file path. Files keep the order in which
// they were first seen; findings keep insertion order within a file.
type FindingsByFile struct {
	files  []string
	byFile map[string][]artifact.LintFinding
}

// GroupByFile builds a FindingsByFile from findings.
func GroupByFile(findings []artifact.LintFinding) *FindingsByFile {
	g := &FindingsByFile{byFile: make(map[string][]artifact.LintFinding)}
	for _, f := range findings {
		g.Add(f)
	}
	return g
}

// Add appends a finding to its file's group.
func (g *FindingsByFile) Add(f artifact.LintFinding) {
	if _, ok := g.byFile[f.FilePath]; !ok {
		g.files = append(g.files, f.FilePath)
	}
	g.byFile[f.FilePath] = append(g.byFile[f.FilePath], f)
}

// Files returns the file paths in first-seen order.
func (g *FindingsByFile) Files() []string {
	return g.files
}

// Findings returns the findings recorded for path.
func (g *FindingsByFile) Findings(path string) []artifact.LintFinding {
	return g.byFile[path]
}

// Len returns the number of distinct files.
func (g *FindingsByFile) Len() int {
	return len(g.files)
}
