// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package platform provides CI/CD platform abstractions.
package platform

import (
	"context"
	"fmt"
	"strings"
)

// Platform posts the status comment on a pull request.
type Platform interface {
	// Name returns the platform name.
	Name() string

	// PostComment creates the status comment on a pull request, or replaces
	// the one posted by an earlier run.
	PostComment(ctx context.Context, number int, body string) error
}

// PullRequestRef identifies a pull request.
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}

// String returns owner/repo#number.
func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// Validate checks that every part of the reference is set.
func (r PullRequestRef) Validate() error {
	if r.Owner == "" || r.Repo == "" {
		return fmt.Errorf("repository is required (owner/name)")
	}
	if r.Number <= 0 {
		return fmt.Errorf("pull request number is required")
	}
	return nil
}

// ParseRepository splits "owner/name".
func ParseRepository(s string) (owner, repo string, err error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" || strings.Contains(parts[1], "/") {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", s)
	}
	return parts[0], parts[1], nil
}
