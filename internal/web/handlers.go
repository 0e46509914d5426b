package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	apierrors "github.com/diogo/gemichat/internal/errors"
	"github.com/diogo/gemichat/internal/gateway"
	"github.com/diogo/gemichat/internal/logger"
	"github.com/diogo/gemichat/internal/models"
	"github.com/diogo/gemichat/internal/session"
)

// imagePlaceholderPrompt is sent when the user uploads an image with no text.
const imagePlaceholderPrompt = "Please analyze this image."

// Notice codes carried through the post-redirect-get cycle.
const (
	noticeEmpty          = "empty"
	noticeImageTooLarge  = "image-too-large"
	noticeImageType      = "image-type"
	noticeBadTemperature = "bad-temperature"
	noticeBadModel       = "bad-model"
	noticeBadUpload      = "bad-upload"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	s.renderPage(w, pageData{
		Session: sess,
		Notice:  noticeText(r.URL.Query().Get("notice")),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	// Leave headroom for the text field and multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+64*1024)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.finishChat(w, r, noticeImageTooLarge)
		return
	}

	message := strings.TrimSpace(r.FormValue("message"))
	image, notice := s.readImage(r)
	if notice != "" {
		s.finishChat(w, r, notice)
		return
	}
	if message == "" && image == nil {
		s.finishChat(w, r, noticeEmpty)
		return
	}
	if message == "" {
		message = imagePlaceholderPrompt
	}

	// History is snapshotted before the new turn is appended; the prompt
	// itself carries the new content.
	history := sess.History()
	cfg := sess.Config()
	sess.AppendTurn(models.NewUserTurn(message, image))

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	prompt := gateway.Prompt{Text: message, Image: image}

	if isAJAX(r) {
		s.streamChat(ctx, w, sess, prompt, cfg, history)
		return
	}

	reply, err := s.gw.Generate(ctx, prompt, cfg, history)
	if err != nil {
		logger.Warn("generate failed", "session", sess.ID, "model", cfg.ModelName, "err", err)
		sess.AppendTurn(models.NewErrorTurn(apierrors.UserMessage(err)))
	} else {
		sess.AppendTurn(models.NewAssistantTurn(reply))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// streamChat serves the AJAX path: the reply is flushed to the client chunk
// by chunk, then recorded in the session. The client re-renders afterwards.
func (s *Server) streamChat(ctx context.Context, w http.ResponseWriter, sess *session.Session, prompt gateway.Prompt, cfg models.SessionConfig, history []models.ChatTurn) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, canFlush := w.(http.Flusher)

	reply, err := s.gw.GenerateStream(ctx, prompt, cfg, history, func(chunk string) error {
		if _, werr := io.WriteString(w, chunk); werr != nil {
			return werr
		}
		if canFlush {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		logger.Warn("stream failed", "session", sess.ID, "model", cfg.ModelName, "err", err)
		msg := apierrors.UserMessage(err)
		sess.AppendTurn(models.NewErrorTurn(msg))
		// Show the failure inline when nothing was streamed yet.
		if reply == "" {
			_, _ = io.WriteString(w, msg)
		}
		return
	}
	sess.AppendTurn(models.NewAssistantTurn(reply))
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?notice="+noticeBadUpload, http.StatusSeeOther)
		return
	}

	update := models.ConfigUpdate{}
	if key := strings.TrimSpace(r.FormValue("api_key")); key != "" {
		update.APIKey = &key
	}
	if model := r.FormValue("model"); model != "" {
		update.ModelName = &model
	}
	if raw := r.FormValue("temperature"); raw != "" {
		temp, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Redirect(w, r, "/?notice="+noticeBadTemperature, http.StatusSeeOther)
			return
		}
		update.Temperature = &temp
	}

	if err := sess.SetConfig(update); err != nil {
		var verr *apierrors.ValidationError
		notice := noticeBadModel
		if errors.As(err, &verr) && verr.Field == "temperature" {
			notice = noticeBadTemperature
		}
		http.Redirect(w, r, "/?notice="+notice, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	data := pageData{Session: sess, ModelsChecked: true}
	names, err := s.gw.ListModels(ctx, sess.Config().APIKey)
	if err != nil {
		logger.Warn("list models failed", "session", sess.ID, "err", err)
		data.ModelsError = apierrors.UserMessage(err)
	} else {
		data.ModelsResult = names
	}
	s.renderPage(w, data)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	sess.Reset()
	logger.Debug("session reset", "session", sess.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAttachment(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	idx, err := strconv.Atoi(r.PathValue("idx"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	att := sess.Attachment(idx)
	if att == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", att.MIMEType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write(att.Data)
}

// readImage extracts the optional image upload. The returned notice code is
// non-empty when the upload was present but unusable.
func (s *Server) readImage(r *http.Request) (*models.ImageAttachment, string) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ""
		}
		return nil, noticeBadUpload
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, noticeBadUpload
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, noticeImageTooLarge
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if !models.SupportedImageType(mimeType) {
		return nil, noticeImageType
	}

	return &models.ImageAttachment{
		FileName: header.Filename,
		MIMEType: mimeType,
		Data:     data,
	}, ""
}

// finishChat reports a pre-gateway rejection: inline for AJAX, via redirect
// notice otherwise.
func (s *Server) finishChat(w http.ResponseWriter, r *http.Request, notice string) {
	if isAJAX(r) {
		http.Error(w, noticeText(notice), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/?notice="+notice, http.StatusSeeOther)
}

func isAJAX(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// noticeText maps a notice code to its banner text. Unknown codes render
// nothing, so a crafted query string cannot inject content.
func noticeText(code string) string {
	switch code {
	case noticeEmpty:
		return "Please enter a message or upload an image."
	case noticeImageTooLarge:
		return "Image too large. Please upload an image smaller than 4MB."
	case noticeImageType:
		return "Unsupported image type. Use JPEG, PNG, GIF or WebP."
	case noticeBadTemperature:
		return "Temperature must be a number between 0 and 1."
	case noticeBadModel:
		return "Unknown model name."
	case noticeBadUpload:
		return "The upload could not be read. Please try again."
	}
	return ""
}
