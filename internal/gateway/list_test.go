package gateway

import (
	"context"
	"io"
	"net/http"
	"reflect"
	"testing"

	apierrors "github.com/diogo/gemichat/internal/errors"
)

const modelListBody = `{
	"models": [
		{"name": "models/gemini-2.5-flash", "supportedGenerationMethods": ["generateContent", "countTokens"]},
		{"name": "models/gemini-2.5-pro", "supportedGenerationMethods": ["generateContent"]},
		{"name": "models/text-embedding-004", "supportedGenerationMethods": ["embedContent"]}
	]
}`

func TestListModelsFiltersGenerationCapable(t *testing.T) {
	var gotKey string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		_, _ = io.WriteString(w, modelListBody)
	})

	names, err := client.ListModels(context.Background(), "test-key")
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}

	want := []string{"gemini-2.5-flash", "gemini-2.5-pro"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if gotKey != "test-key" {
		t.Errorf("API key header = %q", gotKey)
	}
}

func TestListModelsRequiresKey(t *testing.T) {
	called := false
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.ListModels(context.Background(), "")
	if !apierrors.IsAuthError(err) {
		t.Errorf("expected auth error, got %v", err)
	}
	if called {
		t.Error("server was reached without a key")
	}
}

func TestListModelsUpstreamAuthFailure(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"status":"UNAUTHENTICATED","message":"bad key"}}`)
	})

	_, err := client.ListModels(context.Background(), "bad-key")
	if !apierrors.IsAuthError(err) {
		t.Errorf("expected auth error, got %v", err)
	}
}

func TestListModelsMalformedBody(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"unexpected": true}`)
	})

	_, err := client.ListModels(context.Background(), "k")
	if err == nil {
		t.Fatal("expected parse error")
	}
}
