package api

// gjson paths into the generateContent response body
const (
	PathCandidates   = "candidates"
	PathCandText     = "content.parts.#.text"
	PathCandFinish   = "finishReason"
	PathCandIndex    = "index"
	PathBlockReason  = "promptFeedback.blockReason"
	PathUsagePrompt  = "usageMetadata.promptTokenCount"
	PathUsageCand    = "usageMetadata.candidatesTokenCount"
	PathUsageTotal   = "usageMetadata.totalTokenCount"
	PathErrorCode    = "error.code"
	PathErrorStatus  = "error.status"
	PathErrorMessage = "error.message"
)
