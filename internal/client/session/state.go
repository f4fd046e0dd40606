// Package session holds the client-local representation of the currently
// authenticated user and the operations that reconcile it with the remote
// API and the credential store.
//
// The State type exposes reads only; every mutation goes through a Service
// operation. That discipline is what keeps "logged in" equivalent to "a
// durable token exists in the credential store".
package session

import "sync"

// State is the process-wide session state. Exactly one instance exists for
// the process lifetime; it starts empty and is populated by Bootstrap,
// Login, or Signup.
type State struct {
	mu       sync.RWMutex
	token    string
	username string
	userID   string
	loading  bool
	errMsg   string
}

func NewState() *State {
	return &State{}
}

// IsLoggedIn is derived from token presence on every read; it is never
// stored, so it cannot diverge.
func (s *State) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the current bearer token, or "" when logged out.
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *State) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *State) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// IsLoading reports whether an auth operation is in flight.
func (s *State) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last auth failure message, or "" after a successful
// operation.
func (s *State) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// begin marks an operation in flight and clears the previous error.
func (s *State) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.errMsg = ""
}

// fail completes an operation leaving the token untouched.
func (s *State) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = msg
}

// setCredentials completes an operation with a new identity.
func (s *State) setCredentials(token, username, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = ""
	s.token = token
	s.username = username
	s.userID = userID
}

// clear drops the identity, completing any operation in flight.
func (s *State) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = ""
	s.token = ""
	s.username = ""
	s.userID = ""
}
