package gateway

import (
	"net/http"
	"testing"
	"time"

	"github.com/diogo/gemichat/internal/models"
)

func TestNewClientDefaults(t *testing.T) {
	c := NewClient()
	if c.BaseURL() != models.DefaultBaseURL {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
	if c.httpClient.Timeout != defaultTimeout {
		t.Errorf("timeout = %v", c.httpClient.Timeout)
	}
}

func TestWithBaseURLTrimsSlash(t *testing.T) {
	c := NewClient(WithBaseURL("http://example.com/"))
	if c.BaseURL() != "http://example.com" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
}

func TestWithTimeout(t *testing.T) {
	c := NewClient(WithTimeout(5 * time.Second))
	if c.httpClient.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", c.httpClient.Timeout)
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{}
	c := NewClient(WithHTTPClient(hc))
	if c.httpClient != hc {
		t.Error("custom http client not applied")
	}
}
