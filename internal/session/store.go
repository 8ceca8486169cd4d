// Package session holds per-recruiter login state and the results of the
// last ranking run. Results are replaced wholesale on each new run; nothing
// here is durable.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sravani557/quantum-recruiter/internal/models"
)

// Session is one browser session. A session starts anonymous (to carry the
// OAuth state through the handshake) and is authenticated on login.
type Session struct {
	Token          string
	RecruiterEmail string
	RecruiterName  string
	LoginMethod    string
	OAuthState     string

	// LastResults is the most recent ranking run, replaced wholesale by the
	// next run. At most one run is retained per session.
	LastResults *models.SearchResults
}

// Authenticated reports whether a recruiter is logged in on this session.
func (s *Session) Authenticated() bool {
	return s.RecruiterEmail != ""
}

// Store is an in-memory session store keyed by an opaque token.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create starts a new anonymous session and returns its token.
func (st *Store) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := &Session{Token: uuid.NewString()}
	st.sessions[s.Token] = s
	return copySession(s)
}

// Get returns a snapshot of the session for token.
func (st *Store) Get(token string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[token]
	if !ok {
		return nil, false
	}
	return copySession(s), true
}

// Delete removes the session, dropping any held results.
func (st *Store) Delete(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, token)
}

// Authenticate marks the session as logged in.
func (st *Store) Authenticate(token, email, name, method string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[token]
	if !ok {
		return false
	}
	s.RecruiterEmail = email
	s.RecruiterName = name
	s.LoginMethod = method
	return true
}

// SetOAuthState stores the anti-forgery state for an in-flight OAuth handshake.
func (st *Store) SetOAuthState(token, state string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[token]
	if !ok {
		return false
	}
	s.OAuthState = state
	return true
}

// TakeOAuthState returns the stored OAuth state and clears it; a state is
// only good for one callback.
func (st *Store) TakeOAuthState(token string) (string, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[token]
	if !ok || s.OAuthState == "" {
		return "", false
	}
	state := s.OAuthState
	s.OAuthState = ""
	return state, true
}

// SetResults replaces the session's last ranking run.
func (st *Store) SetResults(token string, results *models.SearchResults) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[token]
	if !ok {
		return false
	}
	s.LastResults = results
	return true
}

// Results returns the session's last ranking run, if any.
func (st *Store) Results(token string) (*models.SearchResults, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[token]
	if !ok || s.LastResults == nil {
		return nil, false
	}
	return s.LastResults, true
}

// CandidateByID looks up a candidate of the last run by its unique id.
func (st *Store) CandidateByID(token, id string) (models.Candidate, bool) {
	return st.findCandidate(token, func(c models.Candidate) bool { return c.ID == id })
}

// CandidateByName looks up a candidate of the last run by display name.
// Display names are not unique; the first match wins.
func (st *Store) CandidateByName(token, name string) (models.Candidate, bool) {
	return st.findCandidate(token, func(c models.Candidate) bool { return c.Name == name })
}

func (st *Store) findCandidate(token string, match func(models.Candidate) bool) (models.Candidate, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[token]
	if !ok || s.LastResults == nil {
		return models.Candidate{}, false
	}
	for _, c := range s.LastResults.Candidates {
		if match(c) {
			return c, true
		}
	}
	return models.Candidate{}, false
}

func copySession(s *Session) *Session {
	c := *s
	return &c
}
