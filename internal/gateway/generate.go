package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/gemichat/internal/errors"
	"github.com/diogo/gemichat/internal/models"
)

// Prompt is the user input for one generate call. At least one of Text and
// Image must be present.
type Prompt struct {
	Text  string
	Image *models.ImageAttachment
}

// request/response wire types for the v1beta generateContent call.

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// Generate sends a single blocking request and returns the reply text.
// Prior turns are forwarded as conversation context so follow-up prompts
// stay coherent. The call is stateless with respect to earlier calls.
func (c *Client) Generate(ctx context.Context, prompt Prompt, cfg models.SessionConfig, history []models.ChatTurn) (string, error) {
	body, endpoint, err := c.prepareGenerate(prompt, cfg, history, models.PathGenerate)
	if err != nil {
		return "", err
	}

	resp, err := c.post(ctx, endpoint, cfg.APIKey, body)
	if err != nil {
		return "", apierrors.NewNetworkError(endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", classifyResponse(resp, endpoint, cfg.ModelName)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError(endpoint, err)
	}

	return parseGenerateResponse(raw)
}

// prepareGenerate validates the prompt and builds the request body and URL.
// Validation failures are reported before any network call is attempted.
func (c *Client) prepareGenerate(prompt Prompt, cfg models.SessionConfig, history []models.ChatTurn, pathFormat string) ([]byte, string, error) {
	if strings.TrimSpace(prompt.Text) == "" && prompt.Image == nil {
		return nil, "", apierrors.NewValidationError("prompt", "at least one of text or image is required")
	}
	if !models.ValidModelName(cfg.ModelName) {
		return nil, "", apierrors.NewValidationError("model", fmt.Sprintf("unsupported model name %q", cfg.ModelName))
	}
	if cfg.APIKey == "" {
		return nil, "", apierrors.NewAuthError("no API key configured")
	}

	req := generateRequest{
		Contents: buildContents(prompt, history),
		GenerationConfig: generationConfig{
			Temperature:     cfg.Temperature,
			TopP:            models.GenTopP,
			TopK:            models.GenTopK,
			MaxOutputTokens: models.GenMaxOutputTokens,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build payload: %w", err)
	}

	endpoint := c.baseURL + fmt.Sprintf(pathFormat, cfg.ModelName)
	return body, endpoint, nil
}

// buildContents converts prior turns plus the new prompt into the Gemini
// contents array. Error turns are display-only and never forwarded.
func buildContents(prompt Prompt, history []models.ChatTurn) []content {
	contents := make([]content, 0, len(history)+1)

	for _, turn := range history {
		if turn.IsError || !turn.HasContent() {
			continue
		}

		role := "user"
		if turn.Role == models.RoleAssistant {
			role = "model" // Gemini uses "model" instead of "assistant"
		}

		contents = append(contents, content{Role: role, Parts: turnParts(turn.Text, turn.Image)})
	}

	contents = append(contents, content{Role: "user", Parts: turnParts(prompt.Text, prompt.Image)})
	return contents
}

func turnParts(text string, image *models.ImageAttachment) []part {
	var parts []part
	if image != nil {
		parts = append(parts, part{InlineData: &inlineData{
			MIMEType: image.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(image.Data),
		}})
	}
	if text != "" {
		parts = append(parts, part{Text: text})
	}
	return parts
}

func (c *Client) post(ctx context.Context, endpoint, apiKey string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", models.HeaderContentType)
	req.Header.Set(models.HeaderAPIKey, apiKey)

	return c.httpClient.Do(req)
}

// parseGenerateResponse extracts the reply text from a 200 response.
func parseGenerateResponse(raw []byte) (string, error) {
	parsed := gjson.ParseBytes(raw)

	if block := parsed.Get(pathBlockReason); block.Exists() && block.String() != "" {
		return "", fmt.Errorf("prompt blocked (%s): %w", block.String(), apierrors.ErrNoContent)
	}

	parts := parsed.Get(pathParts)
	if !parts.Exists() {
		if finish := parsed.Get(pathFinishReason); finish.Exists() && finish.String() != "STOP" {
			return "", fmt.Errorf("generation stopped (%s): %w", finish.String(), apierrors.ErrNoContent)
		}
		return "", apierrors.NewParseError("no candidates in response", pathParts)
	}

	var sb strings.Builder
	parts.ForEach(func(_, p gjson.Result) bool {
		sb.WriteString(p.Get("text").String())
		return true
	})

	return sb.String(), nil
}
