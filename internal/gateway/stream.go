package gateway

import (
	"bufio"
	"context"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/gemichat/internal/errors"
	"github.com/diogo/gemichat/internal/models"
)

// GenerateStream is Generate against the SSE endpoint. fn is invoked for
// every text chunk as it arrives; the accumulated reply is returned once the
// stream ends. A non-nil error from fn aborts the stream.
func (c *Client) GenerateStream(ctx context.Context, prompt Prompt, cfg models.SessionConfig, history []models.ChatTurn, fn func(chunk string) error) (string, error) {
	body, endpoint, err := c.prepareGenerate(prompt, cfg, history, models.PathStreamGen)
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

	var sb strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			break
		}

		event := gjson.Parse(data)
		if block := event.Get(pathBlockReason); block.Exists() && block.String() != "" {
			return sb.String(), apierrors.NewParseError("prompt blocked: "+block.String(), pathBlockReason)
		}

		chunk := collectText(event)
		if chunk == "" {
			continue
		}
		sb.WriteString(chunk)

		if fn != nil {
			if err := fn(chunk); err != nil {
				return sb.String(), err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return sb.String(), apierrors.NewNetworkError(endpoint, err)
	}

	if sb.Len() == 0 {
		return "", apierrors.ErrNoContent
	}
	return sb.String(), nil
}

func collectText(event gjson.Result) string {
	var sb strings.Builder
	event.Get(pathParts).ForEach(func(_, p gjson.Result) bool {
		sb.WriteString(p.Get("text").String())
		return true
	})
	return sb.String()
}
