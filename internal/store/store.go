// Package store holds the built graphs and their sessions in memory. Graphs
// are write-once: after registration only the session attached to a graph
// changes, so readers can share the graph pointer without copying.
package store

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"fundgraph/pkg/graph"
	"fundgraph/pkg/session"
)

// Entry is one registered graph together with its exploration session.
type Entry struct {
	Graph   *graph.DiGraph
	Session session.Session
	Created time.Time
}

// Registry is a concurrency-safe in-memory registry of graphs keyed by
// generated IDs.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Put registers a graph under a fresh ID and returns the ID.
func (r *Registry) Put(g *graph.DiGraph) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = Entry{
		Graph:   g,
		Session: session.New(),
		Created: time.Now(),
	}

	return id, nil
}

// Get returns the entry for id. The second return value reports whether the
// id is known.
func (r *Registry) Get(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	return entry, ok
}

// UpdateSession applies fn to the session of id under the write lock and
// returns the updated session. The second return value reports whether the
// id is known; fn is not called for unknown ids.
func (r *Registry) UpdateSession(id string, fn func(session.Session) session.Session) (session.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return session.Session{}, false
	}

	entry.Session = fn(entry.Session)
	r.entries[id] = entry

	return entry.Session, true
}

// Delete removes the entry for id and reports whether it existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[id]
	delete(r.entries, id)
	return ok
}

// Len returns the number of registered graphs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
