// Package restaurants holds the restaurant list state and the operations
// that synchronize it with the remote API and the local snapshot cache.
//
// Like the session, the state exposes reads only: every mutation goes
// through a Service operation.
package restaurants

import (
	"sync"

	"github.com/tfernandez-dev/menumap/internal/client/models"
)

// ListState is the process-wide restaurant list. Order is the server
// response order, then append order for newly added records. Overlapping
// operations resolve last-write-wins; the next focus-triggered fetch
// reconciles.
type ListState struct {
	mu      sync.RWMutex
	items   []models.Restaurant
	loading bool
	errMsg  string
}

func NewListState() *ListState {
	return &ListState{}
}

// Items returns a copy of the current list.
func (s *ListState) Items() []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Restaurant, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ListState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *ListState) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last fetch/add failure message, or "".
func (s *ListState) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *ListState) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.errMsg = ""
}

// fail completes an operation leaving items intact.
func (s *ListState) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = msg
}

// replaceAll swaps the whole list for the fetched collection.
func (s *ListState) replaceAll(items []models.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = ""
	s.items = items
}

// appendOne adds a freshly created record after the prior contents.
func (s *ListState) appendOne(item models.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = ""
	s.items = append(s.items, item)
}
