package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/promptrelay/internal/errors"
	"github.com/diogo/promptrelay/internal/models"
)

// GenerateOptions contains options for content generation
type GenerateOptions struct {
	Model        models.Model
	SystemPrompt string  // Optional system instruction
	Temperature  float64 // Sampling temperature; 0 means server default
	MaxTokens    int     // Output token cap; 0 means server default
}

// generatePart is a single content part in the request payload
type generatePart struct {
	Text string `json:"text"`
}

// generateContent is a role-tagged list of parts
type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

// generationConfig carries optional sampling parameters
type generationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
}

// generateRequest is the generateContent request payload
type generateRequest struct {
	Contents          []generateContent `json:"contents"`
	SystemInstruction *generateContent  `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

// buildPayload builds the JSON request body for a prompt.
// The prompt is carried verbatim; empty strings are allowed and the
// service decides what to make of them.
func buildPayload(prompt string, opts *GenerateOptions) ([]byte, error) {
	req := generateRequest{
		Contents: []generateContent{
			{Role: "user", Parts: []generatePart{{Text: prompt}}},
		},
	}

	if opts != nil {
		if opts.SystemPrompt != "" {
			req.SystemInstruction = &generateContent{
				Parts: []generatePart{{Text: opts.SystemPrompt}},
			}
		}
		if opts.Temperature != 0 || opts.MaxTokens != 0 {
			cfg := &generationConfig{MaxOutputTokens: opts.MaxTokens}
			if opts.Temperature != 0 {
				t := opts.Temperature
				cfg.Temperature = &t
			}
			req.GenerationConfig = cfg
		}
	}

	return json.Marshal(req)
}

// GenerateContent sends a prompt to Gemini and returns the response
func (c *Client) GenerateContent(prompt string, opts *GenerateOptions) (*models.ModelOutput, error) {
	if c.IsClosed() {
		return nil, fmt.Errorf("client is closed")
	}

	model := c.GetModel()
	if opts != nil && opts.Model.Name != "" && opts.Model.Name != models.ModelUnspecified.Name {
		model = opts.Model
	}
	// Unknown names fall back to the default model
	if model.Name == "" || model.Name == models.ModelUnspecified.Name {
		model = models.DefaultModel
	}

	payload, err := buildPayload(prompt, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	endpoint := models.EndpointGenerate(model.Name)

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}
	req.Header.Set("x-goog-api-key", c.GetAPIKey())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if strings.Contains(err.Error(), "timeout") || strings.Contains(err.Error(), "deadline") {
			return nil, apierrors.NewTimeoutError(err.Error())
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, handleHTTPError(resp.StatusCode, endpoint, body)
	}

	return parseResponse(body)
}

// handleHTTPError converts a non-200 response into a typed error
func handleHTTPError(statusCode int, endpoint string, body []byte) error {
	parsed := gjson.ParseBytes(body)
	message := parsed.Get(PathErrorMessage).String()
	status := parsed.Get(PathErrorStatus).String()

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if message == "" {
			message = "API key was rejected"
		}
		return apierrors.NewAuthError(message)
	case http.StatusTooManyRequests:
		return apierrors.NewRateLimitError(message)
	}

	// Some key failures come back as 400 INVALID_ARGUMENT
	if statusCode == http.StatusBadRequest && strings.Contains(message, "API key") {
		return apierrors.NewAuthError(message)
	}

	apiErr := apierrors.NewAPIError(statusCode, endpoint, message)
	apiErr.Status = status
	apiErr.ResponseBody = strings.TrimSpace(string(body))
	return apiErr
}

// parseResponse parses a 200 generateContent response body
func parseResponse(body []byte) (*models.ModelOutput, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response is not valid JSON", "")
	}

	parsed := gjson.ParseBytes(body)

	// A blocked prompt returns 200 with promptFeedback and no candidates
	if block := parsed.Get(PathBlockReason); block.Exists() && block.String() != "" {
		return nil, apierrors.NewBlockedError(block.String())
	}

	candidateList := parsed.Get(PathCandidates)
	if !candidateList.Exists() || !candidateList.IsArray() {
		return nil, apierrors.NewParseError("no candidates found", PathCandidates)
	}

	candidates := []models.Candidate{}
	candidateList.ForEach(func(_, candValue gjson.Result) bool {
		// Multi-part candidates are joined in order
		var text strings.Builder
		candValue.Get(PathCandText).ForEach(func(_, part gjson.Result) bool {
			text.WriteString(part.String())
			return true
		})

		candidates = append(candidates, models.Candidate{
			Index:        int(candValue.Get(PathCandIndex).Int()),
			Text:         text.String(),
			FinishReason: candValue.Get(PathCandFinish).String(),
		})
		return true
	})

	if len(candidates) == 0 {
		return nil, apierrors.NewParseError("empty candidate list", PathCandidates)
	}

	return &models.ModelOutput{
		Candidates: candidates,
		Chosen:     0,
		Usage: models.UsageMetadata{
			PromptTokens:    int(parsed.Get(PathUsagePrompt).Int()),
			CandidateTokens: int(parsed.Get(PathUsageCand).Int()),
			TotalTokens:     int(parsed.Get(PathUsageTotal).Int()),
		},
	}, nil
}
