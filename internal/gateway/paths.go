package gateway

// gjson paths into Gemini REST responses.
const (
	pathParts        = "candidates.0.content.parts"
	pathFinishReason = "candidates.0.finishReason"
	pathBlockReason  = "promptFeedback.blockReason"
	pathErrorStatus  = "error.status"
	pathErrorMessage = "error.message"
	pathModels       = "models"
	pathModelName    = "name"
	pathModelMethods = "supportedGenerationMethods"
)
