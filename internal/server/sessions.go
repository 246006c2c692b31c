package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ukaji3/linechart-go/pkg/linechart"
)

// ErrUnknownChart indicates a chart name the server does not host.
var ErrUnknownChart = errors.New("unknown chart")

// ErrTooManySessions indicates the session store is full.
var ErrTooManySessions = errors.New("too many sessions")

// ErrUnknownSession indicates a session id that does not exist or belongs to another chart.
var ErrUnknownSession = errors.New("unknown session")

type session struct {
	chart    string
	tracker  *linechart.Tracker
	lastSeen time.Time
}

// Sessions holds the trackers of all viewers.
type Sessions struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*session
	limit int
	now   func() time.Time
}

// NewSessions returns an empty session store holding at most limit sessions.
// A limit of zero or less means no limit.
func NewSessions(limit int) *Sessions {
	return &Sessions{items: make(map[uuid.UUID]*session), limit: limit, now: time.Now}
}

// Create stores t under a new id.
func (s *Sessions) Create(chart string, t *linechart.Tracker) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.limit > 0 && len(s.items) >= s.limit {
		return uuid.Nil, ErrTooManySessions
	}
	id := uuid.New()
	s.items[id] = &session{chart: chart, tracker: t, lastSeen: s.now()}
	return id, nil
}

// Get returns the tracker of session id on chart and marks it as used.
func (s *Sessions) Get(chart, id string) (*linechart.Tracker, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUnknownSession
	}

	s.mu.RLock()
	sess, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || sess.chart != chart {
		return nil, ErrUnknownSession
	}

	s.mu.Lock()
	sess.lastSeen = s.now()
	s.mu.Unlock()
	return sess.tracker, nil
}

// Delete removes session id of chart.
func (s *Sessions) Delete(chart, id string) error {
	key, err := uuid.Parse(id)
	if err != nil {
		return ErrUnknownSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[key]
	if !ok || sess.chart != chart {
		return ErrUnknownSession
	}
	delete(s.items, key)
	return nil
}

// Len returns the number of sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Expire removes sessions idle for longer than maxIdle and returns how many were removed.
func (s *Sessions) Expire(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.items {
		if sess.lastSeen.Before(cutoff) {
			delete(s.items, id)
			n++
		}
	}
	return n
}
