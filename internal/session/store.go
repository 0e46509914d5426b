package session

import (
	"sync"
	"time"

	"github.com/diogo/gemichat/internal/models"
)

// Store maps session IDs to sessions. Sessions are created on first access
// and evicted after sitting idle for the configured TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	defaults models.SessionConfig
	ttl      time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

// DefaultTTL is how long an untouched session survives before eviction.
const DefaultTTL = 2 * time.Hour

// sweepInterval controls how often the idle sweeper runs.
const sweepInterval = 5 * time.Minute

// NewStore creates a store whose new sessions start from defaults. A ttl of
// zero uses DefaultTTL; a negative ttl disables eviction.
func NewStore(defaults models.SessionConfig, ttl time.Duration) *Store {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		defaults: defaults,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
}

// GetOrCreate returns the session for id, creating it with the store
// defaults when absent.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}

	s = &Session{
		ID:       id,
		config:   st.defaults,
		lastSeen: time.Now(),
	}
	st.sessions[id] = s
	return s
}

// Get returns the session for id, or nil.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Delete removes a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartSweeper launches the idle-eviction loop. It is a no-op when eviction
// is disabled.
func (st *Store) StartSweeper() {
	if st.ttl < 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-st.stop:
				return
			case <-ticker.C:
				st.sweep(time.Now())
			}
		}
	}()
}

// Stop terminates the sweeper.
func (st *Store) Stop() {
	st.stopOnce.Do(func() { close(st.stop) })
}

func (st *Store) sweep(now time.Time) int {
	if st.ttl < 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	evicted := 0
	for id, s := range st.sessions {
		if s.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			evicted++
		}
	}
	return evicted
}
