package twitter

import (
	"fmt"
	"strings"
	"sync"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"

	"github.com/anatolykoptev/go-twitterapi/web"
)

// Account is a logged-in web session used as cookie credentials.
type Account struct {
	Username  string
	AuthToken string
	CT0       string
	Proxy     string
	UserAgent string
	Profile   stealth.BrowserProfile

	mu             sync.Mutex
	ct0RefreshedAt time.Time
}

// CT0Age returns the time since the ct0 token was last refreshed.
func (a *Account) CT0Age() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ct0RefreshedAt.IsZero() {
		return 24 * time.Hour
	}
	return time.Since(a.ct0RefreshedAt)
}

// RotateCT0 generates a fresh ct0 token and updates the refresh timestamp.
func (a *Account) RotateCT0() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.CT0 = GenerateCT0()
	a.ct0RefreshedAt = time.Now()
}

// SetCT0 updates the ct0 from a server response.
func (a *Account) SetCT0(ct0 string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.CT0 = ct0
	a.ct0RefreshedAt = time.Now()
}

// SetCredentials atomically updates auth_token and ct0.
func (a *Account) SetCredentials(authToken, ct0 string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.AuthToken = authToken
	a.CT0 = ct0
	a.ct0RefreshedAt = time.Now()
}

// Credentials returns a snapshot of the session credentials under lock.
func (a *Account) Credentials() web.Credentials {
	a.mu.Lock()
	defer a.mu.Unlock()
	return web.Credentials{AuthToken: a.AuthToken, CT0: a.CT0, UserAgent: a.UserAgent}
}

// hasSession reports whether both cookies are set.
func (a *Account) hasSession() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.AuthToken != "" && a.CT0 != ""
}

// AssignBrowserProfile sets a browser profile based on index.
func AssignBrowserProfile(acc *Account, idx int) {
	p := stealth.BuiltinProfiles[idx%len(stealth.BuiltinProfiles)]
	acc.Profile = p
	acc.UserAgent = p.UserAgent
}

// ParseAccount parses "username", "username:auth_token:ct0".
// A bare username relies on a saved session.
func ParseAccount(raw string) (*Account, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty account")
	}
	parts := strings.SplitN(raw, ":", 3)
	acc := &Account{Username: parts[0]}
	switch len(parts) {
	case 1:
	case 3:
		if parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("account %s: empty auth_token or ct0", parts[0])
		}
		acc.AuthToken = parts[1]
		acc.CT0 = parts[2]
		acc.ct0RefreshedAt = time.Now()
	default:
		return nil, fmt.Errorf("account %s: expected username:auth_token:ct0", parts[0])
	}
	if acc.Username == "" {
		return nil, fmt.Errorf("account without username")
	}
	AssignBrowserProfile(acc, 0)
	return acc, nil
}
