// Package session provides the in-memory, process-local session state store.
// Each browser session owns one Session: its transcript and its config.
// Nothing here touches disk; state lives exactly as long as the session.
package session

import (
	"sync"
	"time"

	"github.com/diogo/gemichat/internal/models"
)

// Session holds one user's transcript and configuration.
type Session struct {
	ID string

	mu       sync.RWMutex
	config   models.SessionConfig
	turns    []models.ChatTurn
	lastSeen time.Time
}

// Config returns a snapshot of the session configuration.
func (s *Session) Config() models.SessionConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// SetConfig applies a partial configuration update. On validation failure
// the prior values are retained and the error is returned.
func (s *Session) SetConfig(u models.ConfigUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.config.Apply(u)
}

// AppendTurn adds a turn to the transcript. Turns are immutable and
// append-only; insertion order is preserved.
func (s *Session) AppendTurn(turn models.ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
	s.lastSeen = time.Now()
}

// History returns a read-only snapshot of the transcript in insertion order.
func (s *Session) History() []models.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChatTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns without copying the transcript.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Attachment returns the image of the idx-th turn, or nil.
func (s *Session) Attachment(idx int) *models.ImageAttachment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx < 0 || idx >= len(s.turns) {
		return nil
	}
	return s.turns[idx].Image
}

// Reset clears the transcript and keeps the configuration.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
	s.lastSeen = time.Now()
}

// Touch marks the session as recently used for the idle sweeper.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastSeen)
}
