// Package session carries the authenticated user's identity through the
// client. It is built once at startup from stored credentials and passed
// explicitly into anything that needs to know who is acting, instead of
// being read from a global.
package session

import (
	"github.com/saymynamenow/lossantos-cli/pkg/credentials"
)

// Session identifies the acting user for the lifetime of a command.
type Session struct {
	UserID   string
	Username string
	IsAdmin  bool

	authenticated bool
}

// FromCredentials builds a session from stored credentials. A nil or
// expired credential set yields an anonymous session.
func FromCredentials(creds *credentials.Credentials) *Session {
	if creds == nil || !creds.IsValid() {
		return Anonymous()
	}
	return &Session{
		UserID:        creds.UserID,
		Username:      creds.Username,
		IsAdmin:       creds.IsAdmin,
		authenticated: true,
	}
}

// Anonymous returns a session with no identity attached.
func Anonymous() *Session {
	return &Session{}
}

// IsAuthenticated reports whether the session belongs to a logged-in user.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.authenticated
}

// Teardown clears the session on logout.
func (s *Session) Teardown() {
	if s == nil {
		return
	}
	s.UserID = ""
	s.Username = ""
	s.IsAdmin = false
	s.authenticated = false
}
