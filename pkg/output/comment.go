// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package output

import (
	"fmt"
	"strings"

	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/artifact"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/observability"
	"github.com/samber/lo"
)

// Banners and fixed messages of the status comment.
const (
	WorkflowFailedBanner = "## ‼️ Error: Workflow failed to run completely"

	LintErrorsHeading   = "## ‼️ Linting Errors"
	LintWarningsHeading = "## 🟡 Linting Warnings"
	LintCleanHeading    = "## ✅ Linting"
	LintCleanMessage    = "No linting issues found."

	ChangesErrorHeading   = "## ‼️ Incompatible Changes"
	ChangesWarningHeading = "## 🟡 Incompatible Changes"
	ChangesCleanHeading   = "## ✅ Incompatible Changes"
	ChangesCleanMessage   = "No breaking changes were detected."

	DNSErrorHeading = "## ‼️ DNS Errors"
	DNSCleanHeading = "## ✅ DNS"
	DNSCleanMessage = "No DNS issues detected!"

	// sectionSeparator joins rendered blocks into the final comment.
	sectionSeparator = "\n\n"

	changesErrorMarker = "error"
	dnsSuccessMarker   = "successfully"
)

// Options controls comment generation.
type Options struct {
	// IsCI is true when running inside a CI pipeline.
	IsCI bool
	// Validated is true when every required upstream CI step completed.
	Validated bool
	// Paths locates the artifacts read by Generate.
	Paths artifact.Paths
}

// workflowFailed reports whether the run must short-circuit to the failure banner.
func (o Options) workflowFailed() bool {
	return o.IsCI && !o.Validated
}

// CommentGenerator renders the pull request status comment.
type CommentGenerator struct {
	reader *artifact.Reader
	logger observability.Logger
}

// NewCommentGenerator creates a generator that loads artifacts through reader.
func NewCommentGenerator(reader *artifact.Reader, logger observability.Logger) *CommentGenerator {
	if logger == nil {
		logger = observability.NewNop()
	}
	if reader == nil {
		reader = artifact.NewReader(nil, logger)
	}
	return &CommentGenerator{reader: reader, logger: logger}
}

// Generate loads the artifacts named by opts and renders the comment. When the
// CI run was not validated no artifact is read.
func (g *CommentGenerator) Generate(opts Options) string {
	if opts.workflowFailed() {
		g.logger.Warn("workflow not validated, skipping artifacts",
			observability.Bool("ci", opts.IsCI),
			observability.Bool("validated", opts.Validated))
		return WorkflowFailedBanner
	}

	return g.Format(opts, g.reader.Load(opts.Paths))
}

// Format renders the comment for an already loaded bundle.
func (g *CommentGenerator) Format(opts Options, bundle artifact.Bundle) string {
	if opts.workflowFailed() {
		return WorkflowFailedBanner
	}

	var sections []string
	sections = append(sections, lintSection(bundle.Lint)...)
	sections = append(sections, changesSection(bundle.BreakingChanges)...)
	sections = append(sections, dnsSection(bundle.DNS)...)

	return strings.Join(sections, sectionSeparator)
}

// lintSection returns nothing for an empty report, so the whole lint block is
// left out of the comment.
func lintSection(findings []artifact.LintFinding) []string {
	if len(findings) == 0 {
		return nil
	}

	errs := lo.Filter(findings, func(f artifact.LintFinding, _ int) bool {
		return f.Level == artifact.LevelError
	})
	warnings := lo.Filter(findings, func(f artifact.LintFinding, _ int) bool {
		return f.Level == artifact.LevelWarn
	})

	var heading string
	switch {
	case len(errs) > 0:
		heading = LintErrorsHeading
	case len(warnings) > 0:
		heading = LintWarningsHeading
	default:
		return []string{LintCleanHeading, LintCleanMessage}
	}

	var body []string
	if len(errs) > 0 {
		body = append(body, "### Errors:\n", formatFindings(errs))
		if len(warnings) > 0 {
			body = append(body, "\n")
		}
	}
	if len(warnings) > 0 {
		body = append(body, "### Warnings:\n", formatFindings(warnings))
	}

	return []string{heading, strings.Join(body, "\n")}
}

// formatFindings lists findings grouped under a header line per file.
func formatFindings(findings []artifact.LintFinding) string {
	groups := GroupByFile(findings)
	var lines []string
	for _, file := range groups.Files() {
		lines = append(lines, fmt.Sprintf("* File: `%s`", file))
		for _, f := range groups.Findings(file) {
			lines = append(lines, fmt.Sprintf("  * `%s`: %s", f.RuleID, f.Description))
		}
	}
	return strings.Join(lines, "\n")
}

func changesSection(text string) []string {
	switch {
	case text == "":
		return []string{ChangesCleanHeading, ChangesCleanMessage}
	case strings.Contains(text, changesErrorMarker):
		return []string{ChangesErrorHeading, pre(text)}
	default:
		return []string{
			ChangesWarningHeading,
			"<details><summary>Received non-error output:</summary>" + pre(text) + "</details>",
		}
	}
}

func dnsSection(text string) []string {
	if text != "" && !strings.Contains(text, dnsSuccessMarker) {
		return []string{DNSErrorHeading, pre(text)}
	}
	return []string{DNSCleanHeading, DNSCleanMessage}
}

func pre(text string) string {
	return "<pre>" + text + "</pre>"
}
