// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package output renders the pull request status comment and delivers it.
package output

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const (
	// FormatMarkdown leaves the comment untouched.
	FormatMarkdown = "markdown"
	// FormatTerminal renders the comment for a terminal.
	FormatTerminal = "terminal"

	// StyleAuto picks a terminal style from the environment.
	StyleAuto = "auto"
)

// Formatter converts a rendered comment for display.
type Formatter struct {
	format string
	style  string
	width  int
}

// NewFormatter creates a markdown passthrough formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		format: FormatMarkdown,
	}
}

// NewTerminalFormatter creates a formatter that renders markdown for a
// terminal. style is a glamour standard style name or StyleAuto; width 0
// disables wrapping.
func NewTerminalFormatter(style string, width int) *Formatter {
	if style == "" {
		style = StyleAuto
	}
	return &Formatter{
		format: FormatTerminal,
		style:  style,
		width:  width,
	}
}

// Format formats a comment.
func (f *Formatter) Format(comment string) (string, error) {
	if f.format != FormatTerminal {
		return comment, nil
	}

	styleOpt := glamour.WithAutoStyle()
	if f.style != StyleAuto {
		styleOpt = glamour.WithStandardStyle(f.style)
	}

	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(f.width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	rendered, err := renderer.Render(comment)
	if err != nil {
		return "", fmt.Errorf("failed to render comment: %w", err)
	}
	return rendered, nil
}
