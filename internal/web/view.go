package web

import (
	"html/template"
	"io"
	"strings"

	"github.com/diogo/gemichat/internal/logger"
	"github.com/diogo/gemichat/internal/models"
	"github.com/diogo/gemichat/internal/render"
	"github.com/diogo/gemichat/internal/session"
)

// pageData is what the page template receives. Handlers fill Session and
// whatever banner state applies; renderPage derives the rest.
type pageData struct {
	Session *session.Session
	Notice  string

	ModelsChecked bool
	ModelsResult  []string
	ModelsError   string

	// Derived by renderPage.
	Turns       []turnView
	KeySet      bool
	Model       string
	Temperature float64
	Models      []string
	MaxUploadMB int64
}

// turnView is one transcript entry, ready for the template.
type turnView struct {
	Index     int
	IsUser    bool
	IsError   bool
	Body      template.HTML
	HasImage  bool
	ImageName string
	Timestamp string
}

func (s *Server) renderPage(w io.Writer, data pageData) {
	cfg := data.Session.Config()
	data.KeySet = cfg.APIKey != ""
	data.Model = cfg.ModelName
	data.Temperature = cfg.Temperature
	data.Models = models.AllModels()
	data.MaxUploadMB = s.cfg.MaxUploadBytes / (1024 * 1024)
	data.Turns = buildTurnViews(data.Session.History())

	if err := s.tmpl.Execute(w, data); err != nil {
		logger.Error("render page failed", "err", err)
	}
}

func buildTurnViews(turns []models.ChatTurn) []turnView {
	views := make([]turnView, 0, len(turns))
	for i, t := range turns {
		v := turnView{
			Index:     i,
			IsUser:    t.Role == models.RoleUser,
			IsError:   t.IsError,
			Timestamp: t.CreatedAt.Format("15:04"),
		}
		switch {
		case t.IsError:
			v.Body = escapeText(t.Text)
		case t.Role == models.RoleAssistant:
			v.Body = render.HTML(t.Text)
		default:
			v.Body = escapeText(t.Text)
		}
		if t.Image != nil {
			v.HasImage = true
			v.ImageName = t.Image.FileName
		}
		views = append(views, v)
	}
	return views
}

// escapeText renders user-authored plain text with line breaks preserved.
func escapeText(text string) template.HTML {
	escaped := template.HTMLEscapeString(text)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
