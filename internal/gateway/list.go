package gateway

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/gemichat/internal/errors"
	"github.com/diogo/gemichat/internal/models"
)

// ListModels returns the generation-capable model names the given API key
// can access. It exists so callers can diagnose ModelNotFound failures.
func (c *Client) ListModels(ctx context.Context, apiKey string) ([]string, error) {
	if apiKey == "" {
		return nil, apierrors.NewAuthError("no API key configured")
	}

	endpoint := c.baseURL + models.PathListModels

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(models.HeaderAPIKey, apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyResponse(resp, endpoint, "")
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpoint, err)
	}

	return parseModelList(raw)
}

// parseModelList extracts names of models that support generateContent.
func parseModelList(raw []byte) ([]string, error) {
	list := gjson.GetBytes(raw, pathModels)
	if !list.Exists() || !list.IsArray() {
		return nil, apierrors.NewParseError("no model list in response", pathModels)
	}

	var names []string
	list.ForEach(func(_, m gjson.Result) bool {
		supported := false
		m.Get(pathModelMethods).ForEach(func(_, method gjson.Result) bool {
			if method.String() == "generateContent" {
				supported = true
				return false
			}
			return true
		})
		if !supported {
			return true
		}

		name := strings.TrimPrefix(m.Get(pathModelName).String(), "models/")
		if name != "" {
			names = append(names, name)
		}
		return true
	})

	return names, nil
}
