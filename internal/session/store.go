package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

// ErrStoreFull is returned when the session cap is reached.
var ErrStoreFull = errors.New("session store is full")

// Store is a thread-safe in-memory session registry with TTL eviction.
// All forest access goes through the store so no reader can observe a
// partially mutated tree.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	max      int
}

// NewStore creates a store evicting sessions idle for longer than ttl.
// max caps the number of live sessions; 0 means no cap.
func NewStore(ttl time.Duration, max int) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		max:      max,
	}
}

// Create parses nothing itself: it stores an already-built forest under a
// fresh id and returns the new session.
func (s *Store) Create(title, source string, forest *outline.Forest) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.max > 0 && len(s.sessions) >= s.max {
		return nil, ErrStoreFull
	}
	now := time.Now()
	sess := &Session{
		ID:        NewID(source, now),
		Title:     title,
		Source:    source,
		CreatedAt: now,
		forest:    forest,
		updatedAt: now,
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

// Get returns the session with the given id, or nil.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// Delete removes a session. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// List returns snapshots of every live session, newest first.
func (s *Store) List() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Snapshot, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, s.snapshotLocked(sess))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Snapshot returns a summary of one session.
func (s *Store) Snapshot(id string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, false
	}
	return s.snapshotLocked(sess), true
}

func (s *Store) snapshotLocked(sess *Session) Snapshot {
	return Snapshot{
		ID:        sess.ID,
		Title:     sess.Title,
		Nodes:     sess.forest.Len(),
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.updatedAt,
	}
}

// View runs fn with read access to a session's forest under the store lock.
// fn must not mutate the forest and must not retain it. Returns false if the
// session does not exist.
func (s *Store) View(id string, fn func(f *outline.Forest)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	fn(sess.forest)
	return true
}

// Toggle flips the expansion state of one node in a session's forest.
// The second return value reports whether the session exists; the first
// whether the node did.
func (s *Store) Toggle(id string, nodeID int) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false, false
	}
	found := sess.forest.ToggleExpand(nodeID)
	if found {
		sess.updatedAt = time.Now()
	}
	return found, true
}

// SetAllExpanded applies bulk expansion to a session's forest.
func (s *Store) SetAllExpanded(id string, expanded bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.forest.SetAllExpanded(expanded)
	sess.updatedAt = time.Now()
	return true
}

// Replace swaps in a new source text and its freshly parsed forest. The old
// forest is dropped wholesale; node ids restart from 1.
func (s *Store) Replace(id, source string, forest *outline.Forest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Source = source
	sess.forest = forest
	sess.updatedAt = time.Now()
	return true
}

// Cleanup removes sessions idle for longer than the TTL.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, sess := range s.sessions {
		if now.Sub(sess.updatedAt) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// StartCleanup runs Cleanup on a ticker until ctx is done.
func (s *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}
