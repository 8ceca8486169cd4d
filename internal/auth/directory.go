// Package auth covers recruiter identity: the in-memory recruiter directory
// and the Google OAuth handshake.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
)

// Recruiter is one account in the directory. An empty password means the
// account can only sign in through Google.
type Recruiter struct {
	Name     string
	Password string
}

// Directory is the in-memory recruiter account registry. OAuth sign-ins are
// auto-registered on first login.
type Directory struct {
	mu         sync.RWMutex
	recruiters map[string]Recruiter
}

func NewDirectory(seed map[string]Recruiter) *Directory {
	recruiters := make(map[string]Recruiter, len(seed))
	for email, r := range seed {
		recruiters[email] = r
	}
	return &Directory{recruiters: recruiters}
}

// Authenticate checks a password login. OAuth-only accounts (empty password)
// never authenticate this way.
func (d *Directory) Authenticate(email, password string) (Recruiter, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, ok := d.recruiters[email]
	if !ok || r.Password == "" || r.Password != password {
		return Recruiter{}, false
	}
	return r, true
}

// Register adds an OAuth-only account if the email is not already known and
// returns the directory entry for it.
func (d *Directory) Register(email, name string) Recruiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.recruiters[email]; ok {
		return existing
	}
	r := Recruiter{Name: name}
	d.recruiters[email] = r
	return r
}

// Get returns the directory entry for email.
func (d *Directory) Get(email string) (Recruiter, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, ok := d.recruiters[email]
	return r, ok
}

// RandomState returns a URL-safe random token for the OAuth state parameter.
func RandomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
