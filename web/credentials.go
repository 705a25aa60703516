package web

import (
	"errors"

	"golang.org/x/oauth2"
)

// ErrNoCredentials is returned when a Request carries no usable credentials.
var ErrNoCredentials = errors.New("no credentials configured")

// CredentialsMode says how a request is authorized.
type CredentialsMode int

const (
	ModeNone CredentialsMode = iota
	ModeOAuth2
	ModeBearer
	ModeSession
)

func (m CredentialsMode) String() string {
	switch m {
	case ModeOAuth2:
		return "oauth2"
	case ModeBearer:
		return "bearer"
	case ModeSession:
		return "session"
	}
	return "none"
}

// Credentials authorize a request. The first configured source wins, in the
// order TokenSource, BearerToken, cookie session (AuthToken + CT0).
type Credentials struct {
	// TokenSource yields OAuth2 access tokens (app-only or user context).
	TokenSource oauth2.TokenSource

	// BearerToken is a static app-only bearer token.
	BearerToken string

	// AuthToken and CT0 are the auth_token and ct0 cookies of a logged-in web session.
	AuthToken string
	CT0       string

	// UserAgent overrides Request.UserAgent for session credentials.
	UserAgent string
}

// Mode reports which credential source will be used.
func (c Credentials) Mode() CredentialsMode {
	switch {
	case c.TokenSource != nil:
		return ModeOAuth2
	case c.BearerToken != "":
		return ModeBearer
	case c.AuthToken != "" && c.CT0 != "":
		return ModeSession
	}
	return ModeNone
}
