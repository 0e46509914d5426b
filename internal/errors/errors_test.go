package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"auth", NewAuthError("bad key"), ErrAuthFailed},
		{"model", NewModelNotFoundError("gemini-x"), ErrModelNotFound},
		{"payload", NewPayloadTooLargeError("too big"), ErrPayloadTooLarge},
		{"network", NewNetworkError("http://x", nil), ErrNetwork},
		{"upstream", NewUpstreamError(500, "http://x", "boom"), ErrUpstream},
		{"validation", NewValidationError("field", "bad"), ErrInvalidInput},
		{"parse", NewParseError("bad json", "path"), ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tt.err)
			}
		})
	}
}

func TestSentinelsDoNotCrossMatch(t *testing.T) {
	if errors.Is(NewAuthError("x"), ErrModelNotFound) {
		t.Error("auth error matched model-not-found sentinel")
	}
	if errors.Is(NewNetworkError("e", nil), ErrAuthFailed) {
		t.Error("network error matched auth sentinel")
	}
}

func TestNetworkErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewNetworkError("http://x", inner)
	if !errors.Is(err, inner) {
		t.Error("wrapped error not reachable via errors.Is")
	}
}

func TestWrappedSentinelDetection(t *testing.T) {
	err := fmt.Errorf("prompt blocked (SAFETY): %w", ErrNoContent)
	if !errors.Is(err, ErrNoContent) {
		t.Error("wrapped ErrNoContent not detected")
	}
}

func TestGetHTTPStatus(t *testing.T) {
	if got := GetHTTPStatus(NewUpstreamError(503, "e", "m")); got != 503 {
		t.Errorf("GetHTTPStatus = %d, want 503", got)
	}
	wrapped := NewNetworkError("e", NewUpstreamError(429, "e", "m"))
	if got := GetHTTPStatus(wrapped); got != 429 {
		t.Errorf("GetHTTPStatus through wrapper = %d, want 429", got)
	}
	if got := GetHTTPStatus(NewAuthError("x")); got != 0 {
		t.Errorf("GetHTTPStatus on non-upstream = %d, want 0", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"auth", NewAuthError("bad"), "API key"},
		{"model", NewModelNotFoundError("x"), "Check Available Models"},
		{"payload", NewPayloadTooLargeError("x"), "4MB"},
		{"network", NewNetworkError("e", nil), "connection"},
		{"validation", NewValidationError("temperature", "outside [0,1]"), "temperature"},
		{"blocked", fmt.Errorf("blocked: %w", ErrNoContent), "blocked or empty"},
		{"upstream", NewUpstreamError(418, "e", "teapot"), "unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserMessage(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("UserMessage(nil) = %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("UserMessage(%v) = %q, want substring %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestUserMessageNeverEmpty(t *testing.T) {
	errs := []error{
		NewAuthError(""),
		NewModelNotFoundError(""),
		NewUpstreamError(0, "", ""),
		errors.New("totally unknown"),
	}
	for _, err := range errs {
		if UserMessage(err) == "" {
			t.Errorf("UserMessage(%v) is empty", err)
		}
	}
}
