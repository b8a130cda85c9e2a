// Package session owns the live mind maps. Each session holds exactly one
// forest; the forest is replaced wholesale on re-parse and only ever mutated
// through the narrow operations exposed here, all under the session lock.
package session

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

// Session is one mind map and its source text.
type Session struct {
	ID        string
	Title     string
	Source    string
	CreatedAt time.Time

	// Guarded by the store mutex: the store is the single owner of all
	// session state and serializes every reader and writer.
	forest    *outline.Forest
	updatedAt time.Time
}

// Snapshot is a JSON-safe summary of session state.
type Snapshot struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Nodes     int       `json:"nodes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewID derives a session id from the source content and creation time.
func NewID(source string, now time.Time) string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s-%d", source, now.UnixNano()))
	return fmt.Sprintf("%x", h[:])[:16]
}
