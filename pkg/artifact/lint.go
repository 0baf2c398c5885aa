// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package artifact

import (
	"fmt"

	cerrors "github.com/cicd-ai-toolkit/pr-status-comment/pkg/errors"
	"github.com/tidwall/gjson"
)

// ParseLint decodes a lint report. The report must be a JSON array; anything
// else is malformed. Elements are read leniently: missing or non-string keys
// become their string form or "", and non-object elements still count as
// findings with empty fields.
func ParseLint(c Content) ([]LintFinding, error) {
	if !c.OK() {
		return nil, c.Err
	}

	if !gjson.ValidBytes(c.Data) {
		return nil, cerrors.ArtifactMalformedError(c.Path, fmt.Errorf("invalid JSON"))
	}

	root := gjson.ParseBytes(c.Data)
	if !root.IsArray() {
		return nil, cerrors.ArtifactMalformedError(c.Path, fmt.Errorf("expected an array, got %s", root.Type))
	}

	items := root.Array()
	findings := make([]LintFinding, 0, len(items))
	for _, item := range items {
		findings = append(findings, LintFinding{
			FilePath:    item.Get("file-path").String(),
			RuleID:      item.Get("nsid").String(),
			Description: item.Get("lint-description").String(),
			Level:       item.Get("lint-level").String(),
		})
	}

	return findings, nil
}
