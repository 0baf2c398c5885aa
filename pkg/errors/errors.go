// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package errors provides typed errors for pr-status-comment.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrArtifactMissing indicates an artifact file does not exist
	ErrArtifactMissing
	// ErrArtifactUnreadable indicates an artifact exists but could not be read
	ErrArtifactUnreadable
	// ErrArtifactMalformed indicates an artifact was read but could not be parsed
	ErrArtifactMalformed
	// ErrPlatform indicates a platform API error
	ErrPlatform
	// ErrValidation indicates an input validation error
	ErrValidation
)

// Error is the base error type for all pr-status-comment errors
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error
func New(errType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var typed *Error
	if err == nil {
		return false
	}
	if errors.As(err, &typed) {
		return typed.Type == errType
	}
	return false
}

// IsArtifactError reports whether err describes a failed artifact read or parse.
func IsArtifactError(err error) bool {
	return IsType(err, ErrArtifactMissing) ||
		IsType(err, ErrArtifactUnreadable) ||
		IsType(err, ErrArtifactMalformed)
}

// IsRetryable returns true if the error is transient and retryable.
// Artifact reads are never retried.
func IsRetryable(err error) bool {
	var typed *Error
	if !errors.As(err, &typed) {
		return false
	}
	return typed.Type == ErrPlatform
}

// ShouldBlockCI returns true if the error should fail the CI step
func ShouldBlockCI(err error) bool {
	var typed *Error
	if !errors.As(err, &typed) {
		return false
	}

	switch typed.Type {
	case ErrConfig, ErrValidation:
		// user needs to fix these
		return true
	default:
		return false
	}
}

// String returns the short tag used in error messages.
func (t ErrorType) String() string {
	switch t {
	case ErrConfig:
		return "CONFIG"
	case ErrArtifactMissing:
		return "ARTIFACT_MISSING"
	case ErrArtifactUnreadable:
		return "ARTIFACT_UNREADABLE"
	case ErrArtifactMalformed:
		return "ARTIFACT_MALFORMED"
	case ErrPlatform:
		return "PLATFORM"
	case ErrValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *Error {
	return New(ErrConfig, message, cause)
}

// ArtifactMissingError creates an error for an artifact that does not exist
func ArtifactMissingError(path string, cause error) *Error {
	return New(ErrArtifactMissing, "artifact not found", cause).WithContext("path", path)
}

// ArtifactUnreadableError creates an error for an artifact that could not be read
func ArtifactUnreadableError(path string, cause error) *Error {
	return New(ErrArtifactUnreadable, "artifact could not be read", cause).WithContext("path", path)
}

// ArtifactMalformedError creates an error for an artifact that could not be parsed
func ArtifactMalformedError(path string, cause error) *Error {
	return New(ErrArtifactMalformed, "artifact could not be parsed", cause).WithContext("path", path)
}

// PlatformError creates a platform error
func PlatformError(message string, cause error) *Error {
	return New(ErrPlatform, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *Error {
	return New(ErrValidation, message, cause)
}
