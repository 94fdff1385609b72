package core

import (
	"sync"
	"time"
)

// Event is one entry in a session's conversation history.
type Event struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"` // agent name or "user"
	Content   Content   `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session represents a conversational container tracking an ordered event
// history for one user. It is safe for concurrent access.
//
// Contract:
//   - AddEvent updates the Updated timestamp
//   - GetEvents returns a defensive copy to avoid external mutation
//   - Clone performs deep copies of slices/maps for safe divergence
type Session struct {
	ID       string            `json:"id"`
	UserID   string            `json:"user_id"`
	Events   []Event           `json:"events"`
	Created  time.Time         `json:"created"`
	Updated  time.Time         `json:"updated"`
	Metadata map[string]string `json:"metadata"`
	mu       sync.RWMutex
}

// NewSession creates a new session bound to a user.
func NewSession(id, userID string) *Session {
	now := time.Now()
	return &Session{ID: id, UserID: userID, Events: []Event{}, Created: now, Updated: now, Metadata: map[string]string{}}
}

// AddEvent appends an event to the history updating the Updated timestamp.
func (s *Session) AddEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, ev)
	s.Updated = time.Now()
}

// GetEvents returns a defensive copy of the full event slice.
func (s *Session) GetEvents() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	return events
}

// ConversationHistory returns the event contents in order, suitable for
// providing conversational context to models.
func (s *Session) ConversationHistory() []Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := make([]Content, 0, len(s.Events))
	for _, ev := range s.Events {
		history = append(history, ev.Content)
	}
	return history
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Session{ID: s.ID, UserID: s.UserID, Events: make([]Event, len(s.Events)), Created: s.Created, Updated: s.Updated, Metadata: make(map[string]string, len(s.Metadata))}
	copy(clone.Events, s.Events)
	for k, v := range s.Metadata {
		clone.Metadata[k] = v
	}
	return clone
}

// SessionStore persists sessions and their evolving event history.
type SessionStore interface {
	Create(id, userID string) (*Session, error)
	Get(id string) (*Session, error)
	AppendEvent(sessionID string, event Event) error
}
