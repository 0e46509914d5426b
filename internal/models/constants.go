// Package models contains data types and constants shared across gemichat.
package models

// Endpoints for the Gemini REST API (v1beta).
const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	PathGenerate      = "/v1beta/models/%s:generateContent"
	PathStreamGen     = "/v1beta/models/%s:streamGenerateContent?alt=sse"
	PathListModels    = "/v1beta/models?pageSize=100"
	HeaderAPIKey      = "x-goog-api-key"
	HeaderContentType = "application/json"
)

// Model names accepted by SessionConfig. The remote service knows more, but
// the picker only offers these; ListModels exists to diagnose mismatches.
const (
	ModelFlash       = "gemini-2.5-flash"
	ModelPro         = "gemini-2.5-pro"
	ModelFlashLatest = "gemini-flash-latest"
)

// DefaultModel is the recommended default.
const DefaultModel = ModelFlash

// Generation parameters sent with every request. Temperature comes from the
// session config; the rest are fixed.
const (
	GenTopP            = 0.95
	GenTopK            = 40
	GenMaxOutputTokens = 8192
)

// MaxImageSize is the soft ceiling for inline image payloads. It is a
// documented caller responsibility, not enforced by the gateway; the remote
// service may reject larger payloads with 413.
const MaxImageSize = 4 * 1024 * 1024 // 4MB

// AllModels returns the model names offered by the picker.
func AllModels() []string {
	return []string{ModelFlash, ModelPro, ModelFlashLatest}
}

// ValidModelName reports whether name is one of the supported models.
func ValidModelName(name string) bool {
	switch name {
	case ModelFlash, ModelPro, ModelFlashLatest:
		return true
	}
	return false
}

// SupportedImageTypes returns the list of supported MIME types for upload.
func SupportedImageTypes() []string {
	return []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
	}
}

// SupportedImageType reports whether mimeType can be attached to a prompt.
func SupportedImageType(mimeType string) bool {
	for _, t := range SupportedImageTypes() {
		if t == mimeType {
			return true
		}
	}
	return false
}
