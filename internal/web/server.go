// Package web is the presentation layer: it renders the session transcript
// and sidebar controls, and turns form submissions into session mutations
// and gateway calls. Rendering is always a full redraw from a state
// snapshot.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/diogo/gemichat/internal/config"
	"github.com/diogo/gemichat/internal/gateway"
	"github.com/diogo/gemichat/internal/logger"
	"github.com/diogo/gemichat/internal/models"
	"github.com/diogo/gemichat/internal/session"
)

//go:embed templates/page.html
var templateFS embed.FS

// sessionCookie names the cookie carrying the session ID.
const sessionCookie = "gemichat_session"

// Gateway is the slice of the model gateway the web layer needs. The
// concrete *gateway.Client satisfies it; tests substitute a stub.
type Gateway interface {
	Generate(ctx context.Context, prompt gateway.Prompt, cfg models.SessionConfig, history []models.ChatTurn) (string, error)
	GenerateStream(ctx context.Context, prompt gateway.Prompt, cfg models.SessionConfig, history []models.ChatTurn, fn func(chunk string) error) (string, error)
	ListModels(ctx context.Context, apiKey string) ([]string, error)
}

// Server wires the session store, the gateway and the page template.
type Server struct {
	store     *session.Store
	gw        Gateway
	cfg       *config.Config
	tmpl      *template.Template
	mux       *http.ServeMux
	secureSet bool // set Secure on cookies (behind TLS)
}

// NewServer creates the web server. It panics only on a broken embedded
// template, which is a build defect rather than a runtime condition.
func NewServer(store *session.Store, gw Gateway, cfg *config.Config) *Server {
	s := &Server{
		store: store,
		gw:    gw,
		cfg:   cfg,
		tmpl:  template.Must(template.ParseFS(templateFS, "templates/page.html")),
		mux:   http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /chat", s.handleChat)
	s.mux.HandleFunc("POST /settings", s.handleSettings)
	s.mux.HandleFunc("POST /models", s.handleModels)
	s.mux.HandleFunc("POST /reset", s.handleReset)
	s.mux.HandleFunc("GET /attachments/{idx}", s.handleAttachment)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start runs the HTTP server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	logger.Info("web UI listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// sessionFor resolves the request's session, minting a cookie when absent.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session.Session {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		if _, err := uuid.Parse(c.Value); err == nil {
			return s.store.GetOrCreate(c.Value)
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureSet,
		SameSite: http.SameSiteLaxMode,
	})
	return s.store.GetOrCreate(id)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
