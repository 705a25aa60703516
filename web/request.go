// Package web holds the HTTP plumbing shared by every controller: the request
// context, the query a controller builds, the raw response and the typed
// result wrapper, plus executors that perform the actual exchange.
package web

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the public API host.
const DefaultBaseURL = "https://api.twitter.com"

// Request is the context a controller needs to perform an authenticated call.
// A fresh Request is built for every call; it is never shared between calls.
type Request struct {
	Credentials Credentials
	BaseURL     string
	UserAgent   string
}

// Clone returns a copy of r.
func (r *Request) Clone() *Request {
	c := *r
	return &c
}

// URL joins the base URL, path and query.
func (r *Request) URL(path string, query url.Values) string {
	base := r.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u := strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Headers returns the HTTP headers for q, including authorization.
func (r *Request) Headers(q *Query) (map[string]string, error) {
	ua := r.Credentials.UserAgent
	if ua == "" {
		ua = r.UserAgent
	}

	var h map[string]string
	switch r.Credentials.Mode() {
	case ModeOAuth2:
		tok, err := r.Credentials.TokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("oauth2 token: %w", err)
		}
		h = apiHeaders(ua)
		h["authorization"] = tok.Type() + " " + tok.AccessToken
	case ModeBearer:
		h = apiHeaders(ua)
		h["authorization"] = "Bearer " + r.Credentials.BearerToken
	case ModeSession:
		h = sessionHeaders(r.Credentials.AuthToken, r.Credentials.CT0, ua)
	default:
		return nil, ErrNoCredentials
	}

	if len(q.Body) == 0 {
		delete(h, "content-type")
	} else if q.ContentType != "" {
		h["content-type"] = q.ContentType
	}
	return h, nil
}

// Query is a single HTTP exchange built by a controller.
type Query struct {
	// Endpoint is the operation name, used for logs and metrics.
	Endpoint    string
	Method      string
	URL         string
	Body        []byte
	ContentType string
}
