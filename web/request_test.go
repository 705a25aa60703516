package web

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestRequestURL(t *testing.T) {
	r := &Request{}
	assert.Equal(t, "https://api.twitter.com/2/tweets", r.URL("/2/tweets", nil))

	r.BaseURL = "http://localhost:8080/"
	q := url.Values{"ids": {"1,2"}}
	assert.Equal(t, "http://localhost:8080/2/tweets?ids=1%2C2", r.URL("2/tweets", q))
}

func TestCredentialsMode(t *testing.T) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "x"})
	tests := []struct {
		name  string
		creds Credentials
		want  CredentialsMode
	}{
		{"none", Credentials{}, ModeNone},
		{"half session", Credentials{AuthToken: "a"}, ModeNone},
		{"session", Credentials{AuthToken: "a", CT0: "c"}, ModeSession},
		{"bearer beats session", Credentials{BearerToken: "b", AuthToken: "a", CT0: "c"}, ModeBearer},
		{"oauth2 beats bearer", Credentials{TokenSource: ts, BearerToken: "b"}, ModeOAuth2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.creds.Mode())
		})
	}
	assert.Equal(t, "session", ModeSession.String())
}

func TestRequestHeaders(t *testing.T) {
	withBody := &Query{Body: []byte(`{}`)}
	withoutBody := &Query{}

	t.Run("bearer", func(t *testing.T) {
		r := &Request{Credentials: Credentials{BearerToken: "tok"}, UserAgent: "ua/1"}
		h, err := r.Headers(withBody)
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok", h["authorization"])
		assert.Equal(t, "ua/1", h["user-agent"])
		assert.Equal(t, "application/json", h["content-type"])

		h, err = r.Headers(withoutBody)
		require.NoError(t, err)
		assert.NotContains(t, h, "content-type")
	})

	t.Run("oauth2", func(t *testing.T) {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "access", TokenType: "bearer"})
		r := &Request{Credentials: Credentials{TokenSource: ts}}
		h, err := r.Headers(withoutBody)
		require.NoError(t, err)
		assert.Equal(t, "Bearer access", h["authorization"])
		assert.Equal(t, DefaultUserAgent, h["user-agent"])
	})

	t.Run("oauth2 failure", func(t *testing.T) {
		r := &Request{Credentials: Credentials{TokenSource: failingSource{}}}
		_, err := r.Headers(withoutBody)
		assert.ErrorContains(t, err, "token endpoint down")
	})

	t.Run("session", func(t *testing.T) {
		r := &Request{Credentials: Credentials{AuthToken: "auth", CT0: "csrf", UserAgent: "session-ua"}, UserAgent: "ignored"}
		h, err := r.Headers(withBody)
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+WebBearerToken, h["authorization"])
		assert.Equal(t, "csrf", h["x-csrf-token"])
		assert.Equal(t, "auth_token=auth; ct0=csrf", h["cookie"])
		assert.Equal(t, "session-ua", h["user-agent"])
	})

	t.Run("custom content type", func(t *testing.T) {
		r := &Request{Credentials: Credentials{BearerToken: "tok"}}
		h, err := r.Headers(&Query{Body: []byte("a=b"), ContentType: "application/x-www-form-urlencoded"})
		require.NoError(t, err)
		assert.Equal(t, "application/x-www-form-urlencoded", h["content-type"])
	})

	t.Run("no credentials", func(t *testing.T) {
		_, err := (&Request{}).Headers(withoutBody)
		assert.ErrorIs(t, err, ErrNoCredentials)
	})
}

func TestRequestClone(t *testing.T) {
	r := &Request{Credentials: Credentials{BearerToken: "a"}, BaseURL: "x"}
	c := r.Clone()
	c.Credentials.BearerToken = "b"
	assert.Equal(t, "a", r.Credentials.BearerToken)
	assert.Equal(t, "x", c.BaseURL)
}

type failingSource struct{}

func (failingSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("token endpoint down")
}
