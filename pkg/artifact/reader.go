// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package artifact

import (
	"errors"
	"io/fs"

	cerrors "github.com/cicd-ai-toolkit/pr-status-comment/pkg/errors"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/observability"
	"github.com/spf13/afero"
)

// Content is the outcome of reading one artifact.
type Content struct {
	Path string
	Data []byte
	Err  error
}

// OK reports whether the artifact was read.
func (c Content) OK() bool {
	return c.Err == nil
}

// Text returns the artifact as a string, or "" if the read failed.
func (c Content) Text() string {
	if c.Err != nil {
		return ""
	}
	return string(c.Data)
}

// Reader reads artifacts from a filesystem.
type Reader struct {
	fs     afero.Fs
	logger observability.Logger
}

// NewReader creates a reader over fsys. A nil fsys reads the OS filesystem.
func NewReader(fsys afero.Fs, logger observability.Logger) *Reader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if logger == nil {
		logger = observability.NewNop()
	}
	return &Reader{fs: fsys, logger: logger}
}

// Read reads one artifact. The file handle is released before Read returns.
func (r *Reader) Read(path string) Content {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Content{Path: path, Err: cerrors.ArtifactMissingError(path, err)}
		}
		return Content{Path: path, Err: cerrors.ArtifactUnreadableError(path, err)}
	}
	return Content{Path: path, Data: data}
}

// Load reads all three artifacts in order and collapses every failure to the
// empty default. Failures are only logged.
func (r *Reader) Load(paths Paths) Bundle {
	lintContent := r.Read(paths.Lint)
	lint, err := ParseLint(lintContent)
	if err != nil {
		r.discard(paths.Lint, err)
		lint = []LintFinding{}
	}

	changes := r.Read(paths.BreakingChanges)
	if !changes.OK() {
		r.discard(paths.BreakingChanges, changes.Err)
	}

	dns := r.Read(paths.DNS)
	if !dns.OK() {
		r.discard(paths.DNS, dns.Err)
	}

	r.logger.Debug("artifacts loaded",
		observability.Int("lint_findings", len(lint)),
		observability.Int("breaking_changes_bytes", len(changes.Data)),
		observability.Int("dns_bytes", len(dns.Data)))

	return Bundle{
		Lint:            lint,
		BreakingChanges: changes.Text(),
		DNS:             dns.Text(),
	}
}

func (r *Reader) discard(path string, err error) {
	r.logger.Debug("artifact treated as empty",
		observability.String("path", path),
		observability.Err(err))
}
