package sessions

import (
	"sync"
	"time"

	"lessonbot/internal/common/clock"
	"lessonbot/internal/models"
)

// Store holds the live conversation sessions, one per chat identity.
// Acquire hands the session out with its lock held, so intents for the
// same chat are processed strictly one at a time while intents for
// different chats proceed in parallel.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
	ttl     time.Duration
	clock   clock.Clock
}

type entry struct {
	mu      sync.Mutex
	session *models.ChatSession
}

// Config holds configuration for the session store
type Config struct {
	// TTL recycles sessions idle for longer than this on their next
	// acquire. Zero disables expiry.
	TTL time.Duration

	// Clock is injectable for tests
	Clock clock.Clock
}

// New creates a new session store
func New(cfg *Config) *Store {
	ttl := time.Duration(0)
	clk := clock.Clock(&clock.DefaultClock{})
	if cfg != nil {
		ttl = cfg.TTL
		if cfg.Clock != nil {
			clk = cfg.Clock
		}
	}

	return &Store{
		entries: make(map[int64]*entry),
		ttl:     ttl,
		clock:   clk,
	}
}

// Acquire returns the session for the chat with its lock held, creating
// a fresh one when none exists or the previous one expired. The caller
// must invoke the returned release function when done with the session.
func (s *Store) Acquire(chatID int64) (*models.ChatSession, func()) {
	s.mu.Lock()
	e, ok := s.entries[chatID]
	if !ok {
		e = &entry{session: s.newSession(chatID)}
		s.entries[chatID] = e
	}
	s.mu.Unlock()

	// Taken outside the store lock so a busy session never stalls
	// unrelated chats
	e.mu.Lock()

	now := s.clock.Now()
	if s.ttl > 0 && now.Sub(e.session.LastActive) > s.ttl {
		e.session = s.newSession(chatID)
	}
	e.session.LastActive = now

	return e.session, e.mu.Unlock
}

// Clear drops the session for the chat. The next acquire starts from a
// fresh one.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, chatID)
}

// Reset replaces the chat's session in place with a fresh one. Unlike
// Clear it is safe to call while holding the session via Acquire.
func (s *Store) Reset(session *models.ChatSession) {
	chatID := session.ChatID
	last := session.LastActive
	*session = *s.newSession(chatID)
	session.LastActive = last
}

func (s *Store) newSession(chatID int64) *models.ChatSession {
	return &models.ChatSession{
		ChatID:     chatID,
		State:      models.StateStart,
		LastActive: s.clock.Now(),
	}
}
