// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides structured logging.
//
// Logs always go to stderr; stdout carries the rendered comment.
package observability

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the structured logger interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// logger is the default implementation.
type logger struct {
	base *log.Logger
}

// NewLogger creates a logger writing to stderr at the given level.
// Unknown levels fall back to warn.
func NewLogger(level string) Logger {
	return NewLoggerTo(os.Stderr, level)
}

// NewLoggerTo creates a logger writing to w.
func NewLoggerTo(w io.Writer, level string) Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}

	return &logger{
		base: log.NewWithOptions(w, log.Options{
			Level:           lvl,
			Prefix:          "format-comment",
			ReportTimestamp: false,
		}),
	}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return NewLoggerTo(io.Discard, "error")
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.base.Debug(msg, keyvals(fields)...)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.base.Info(msg, keyvals(fields)...)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.base.Warn(msg, keyvals(fields)...)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.base.Error(msg, keyvals(fields)...)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{base: l.base.With(keyvals(fields)...)}
}

func keyvals(fields []Field) []any {
	kv := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
