// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/observability"
	"github.com/spf13/afero"
)

// Commenter posts a comment on a pull request.
type Commenter interface {
	PostComment(ctx context.Context, number int, body string) error
}

// Reporter delivers a rendered comment: always to out, optionally to the job
// summary file and the pull request.
type Reporter struct {
	out         io.Writer
	fs          afero.Fs
	summaryPath string
	commenter   Commenter
	prNumber    int
	logger      observability.Logger
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithStepSummary appends every report to the file at path.
func WithStepSummary(fsys afero.Fs, path string) ReporterOption {
	return func(r *Reporter) {
		r.fs = fsys
		r.summaryPath = path
	}
}

// WithPullRequest posts every report to pull request number through c.
func WithPullRequest(c Commenter, number int) ReporterOption {
	return func(r *Reporter) {
		r.commenter = c
		r.prNumber = number
	}
}

// WithLogger sets the reporter logger.
func WithLogger(logger observability.Logger) ReporterOption {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// NewReporter creates a new reporter writing to out.
func NewReporter(out io.Writer, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		out:    out,
		logger: observability.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}
	return r
}

// Report delivers comment to every configured sink, stopping at the first
// failure.
func (r *Reporter) Report(ctx context.Context, comment string) error {
	if r.out != nil {
		if _, err := fmt.Fprintln(r.out, comment); err != nil {
			return fmt.Errorf("failed to write comment: %w", err)
		}
	}

	if r.summaryPath != "" {
		if err := r.appendSummary(comment); err != nil {
			return err
		}
		r.logger.Info("appended comment to job summary", observability.String("path", r.summaryPath))
	}

	if r.commenter != nil {
		if err := r.commenter.PostComment(ctx, r.prNumber, comment); err != nil {
			return fmt.Errorf("failed to post comment: %w", err)
		}
		r.logger.Info("posted comment", observability.Int("pr", r.prNumber))
	}

	return nil
}

func (r *Reporter) appendSummary(comment string) error {
	f, err := r.fs.OpenFile(r.summaryPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open job summary: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\n", comment); err != nil {
		return fmt.Errorf("failed to write job summary: %w", err)
	}
	return nil
}
