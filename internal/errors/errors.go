// Package errors provides custom error types for the Gemini gateway and the
// session layer.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrAuthFailed      = errors.New("authentication failed")
	ErrModelNotFound   = errors.New("model not found")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrNetwork         = errors.New("network failure")
	ErrUpstream        = errors.New("upstream failure")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidResponse = errors.New("invalid response format")
	ErrNoContent       = errors.New("no content in response")
)

// AuthError represents a bad or missing API key.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed: API key is missing or invalid"
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// Is allows comparison with the ErrAuthFailed sentinel.
func (e *AuthError) Is(target error) bool {
	if target == ErrAuthFailed {
		return true
	}
	_, ok := target.(*AuthError)
	return ok
}

// NewAuthError creates a new AuthError.
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// ModelNotFoundError represents an unknown or unavailable model name.
type ModelNotFoundError struct {
	Model string
}

func (e *ModelNotFoundError) Error() string {
	if e.Model == "" {
		return "model not found or unavailable"
	}
	return fmt.Sprintf("model not found or unavailable: %s", e.Model)
}

// Is allows comparison with the ErrModelNotFound sentinel.
func (e *ModelNotFoundError) Is(target error) bool {
	if target == ErrModelNotFound {
		return true
	}
	_, ok := target.(*ModelNotFoundError)
	return ok
}

// NewModelNotFoundError creates a new ModelNotFoundError.
func NewModelNotFoundError(model string) *ModelNotFoundError {
	return &ModelNotFoundError{Model: model}
}

// PayloadTooLargeError represents a request the service refused for size.
type PayloadTooLargeError struct {
	Message string
}

func (e *PayloadTooLargeError) Error() string {
	if e.Message == "" {
		return "payload too large: the service rejected the request size"
	}
	return fmt.Sprintf("payload too large: %s", e.Message)
}

// Is allows comparison with the ErrPayloadTooLarge sentinel.
func (e *PayloadTooLargeError) Is(target error) bool {
	if target == ErrPayloadTooLarge {
		return true
	}
	_, ok := target.(*PayloadTooLargeError)
	return ok
}

// NewPayloadTooLargeError creates a new PayloadTooLargeError.
func NewPayloadTooLargeError(message string) *PayloadTooLargeError {
	return &PayloadTooLargeError{Message: message}
}

// NetworkError represents a transient transport-level failure (connection
// refused, timeout, 5xx, rate limiting). Retrying later may succeed; this
// system never retries on its own.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transient network failure at %s", e.Endpoint)
	}
	return fmt.Sprintf("transient network failure at %s: %v", e.Endpoint, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *NetworkError) Unwrap() error { return e.Err }

// Is allows comparison with the ErrNetwork sentinel.
func (e *NetworkError) Is(target error) bool {
	if target == ErrNetwork {
		return true
	}
	_, ok := target.(*NetworkError)
	return ok
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// UpstreamError represents an upstream failure that fits no other class.
type UpstreamError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("upstream error at %s: %s", e.Endpoint, e.Message)
}

// Is allows comparison with the ErrUpstream sentinel.
func (e *UpstreamError) Is(target error) bool {
	if target == ErrUpstream {
		return true
	}
	_, ok := target.(*UpstreamError)
	return ok
}

// NewUpstreamError creates a new UpstreamError.
func NewUpstreamError(statusCode int, endpoint, message string) *UpstreamError {
	return &UpstreamError{StatusCode: statusCode, Endpoint: endpoint, Message: message}
}

// ValidationError represents malformed local input or configuration. It is
// raised before any network call is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Is allows comparison with the ErrInvalidInput sentinel.
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ParseError represents a response parsing error.
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel.
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError.
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}
