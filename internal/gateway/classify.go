package gateway

import (
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/gemichat/internal/errors"
)

// maxErrorBody caps how much of an error response is read for diagnostics.
const maxErrorBody = 4096

// classifyResponse converts a non-200 response into the local error
// taxonomy. The upstream JSON error envelope ({"error": {code, status,
// message}}) is consulted when present, the HTTP status otherwise.
func classifyResponse(resp *http.Response, endpoint, model string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	parsed := gjson.ParseBytes(raw)
	status := parsed.Get(pathErrorStatus).String()
	message := parsed.Get(pathErrorMessage).String()
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		status == "UNAUTHENTICATED",
		status == "PERMISSION_DENIED":
		return apierrors.NewAuthError(message)

	case resp.StatusCode == http.StatusBadRequest && status == "INVALID_ARGUMENT" &&
		strings.Contains(strings.ToLower(message), "api key"):
		// The service reports an invalid API key as INVALID_ARGUMENT.
		return apierrors.NewAuthError(message)

	case resp.StatusCode == http.StatusNotFound, status == "NOT_FOUND":
		return apierrors.NewModelNotFoundError(model)

	case resp.StatusCode == http.StatusRequestEntityTooLarge:
		return apierrors.NewPayloadTooLargeError(message)

	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= 500:
		return apierrors.NewNetworkError(endpoint, apierrors.NewUpstreamError(resp.StatusCode, endpoint, message))

	default:
		return apierrors.NewUpstreamError(resp.StatusCode, endpoint, message)
	}
}
