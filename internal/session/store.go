// Package session keeps parsed shipment lists in memory between the parse
// request and the label downloads that follow it.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

var (
	// ErrNotFound is returned for an unknown or expired session.
	ErrNotFound = errors.New("session: not found")
	// ErrRecordNotFound is returned for an unknown record id.
	ErrRecordNotFound = errors.New("session: record not found")
	// ErrInvalidPayer is returned when a payer override is neither ÜA nor ÜG.
	ErrInvalidPayer = errors.New("session: payer must be ÜA or ÜG")
)

// Entry is one record of a session.
type Entry struct {
	ID string `json:"id" yaml:"id"`
	shipment.Record `yaml:",inline"`
}

// Session is a snapshot of one parsed upload.
type Session struct {
	ID        string    `json:"id"`
	Entries   []Entry   `json:"records"`
	Blocks    int       `json:"blocks"`
	Dropped   int       `json:"dropped"`
	CreatedAt time.Time `json:"created_at"`
	lastSeen  time.Time
}

// Records returns the shipment records in order.
func (s Session) Records() []shipment.Record {
	out := make([]shipment.Record, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Record
	}
	return out
}

// Entry looks up a record by id.
func (s Session) Entry(id string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Store is an in-memory session store safe for concurrent use. Sessions
// idle for longer than the TTL are removed by [Store.Sweep].
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates a Store evicting sessions idle for ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// TTL returns the idle timeout.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create stores a parse result under a new session id.
func (s *Store) Create(res shipment.Result) Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Entries:   make([]Entry, len(res.Records)),
		Blocks:    res.Blocks,
		Dropped:   res.Dropped,
		CreatedAt: now,
		lastSeen:  now,
	}
	for i, rec := range res.Records {
		sess.Entries[i] = Entry{ID: uuid.NewString(), Record: rec}
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess.clone()
}

// Get returns a copy of the session and marks it as used.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	sess.lastSeen = s.now()
	return sess.clone(), nil
}

// SetPayer overrides the final payer of one record.
func (s *Store) SetPayer(id, recordID string, payer shipment.PayerCode) (Entry, error) {
	if payer == shipment.PayerUnknown {
		return Entry{}, ErrInvalidPayer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	sess.lastSeen = s.now()
	for i := range sess.Entries {
		if sess.Entries[i].ID == recordID {
			sess.Entries[i].FinalPayer = payer
			return sess.Entries[i], nil
		}
	}
	return Entry{}, ErrRecordNotFound
}

// Delete removes a session. Deleting an unknown id is not an error.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle since before now minus the TTL and returns
// how many were removed.
func (s *Store) Sweep(now time.Time) int {
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep(s.now())
		}
	}
}

func (s *Session) clone() Session {
	c := *s
	c.Entries = append([]Entry(nil), s.Entries...)
	return c
}
