package errors

import "errors"

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthFailed)
}

// IsModelNotFound reports whether err is an unknown-model failure.
func IsModelNotFound(err error) bool {
	return errors.Is(err, ErrModelNotFound)
}

// IsPayloadTooLarge reports whether err is an oversized-payload failure.
func IsPayloadTooLarge(err error) bool {
	return errors.Is(err, ErrPayloadTooLarge)
}

// IsNetworkError reports whether err is a transient transport failure.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsValidationError reports whether err is a local validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// GetHTTPStatus extracts the upstream HTTP status from an error, or 0.
func GetHTTPStatus(err error) int {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode
	}
	return 0
}

// UserMessage converts any gateway or validation error into the text shown
// in the transcript. Every failure is displayable; nothing is fatal to the
// session.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case IsAuthError(err):
		return "The API key was rejected. Check the key in the sidebar and try again."
	case IsModelNotFound(err):
		return "The selected model is unknown or unavailable. Use \"Check Available Models\" to see what your key can access."
	case IsPayloadTooLarge(err):
		return "The request was too large. Images should stay under 4MB."
	case IsNetworkError(err):
		return "Could not reach the Gemini service. Check your connection and try again."
	case IsValidationError(err):
		return err.Error()
	case errors.Is(err, ErrNoContent), errors.Is(err, ErrInvalidResponse):
		return "The response was blocked or empty. Try rephrasing your prompt."
	default:
		return "The Gemini service returned an unexpected error: " + err.Error()
	}
}
