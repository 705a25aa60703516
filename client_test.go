package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go-twitterapi/parameters"
	"github.com/anatolykoptev/go-twitterapi/web"
)

// recordingExecutor stores every exchange and answers through respond.
type recordingExecutor struct {
	mu      sync.Mutex
	queries []*web.Query
	reqs    []*web.Request
	respond func(q *web.Query) (*web.Response, error)
}

func (r *recordingExecutor) Execute(_ context.Context, q *web.Query, req *web.Request) (*web.Response, error) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.reqs = append(r.reqs, req)
	r.mu.Unlock()
	if r.respond != nil {
		return r.respond(q)
	}
	return &web.Response{Endpoint: q.Endpoint, Status: http.StatusOK, Content: []byte(`{"data":{"id":"1","text":"ok"}}`)}, nil
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(ClientConfig{Executor: &recordingExecutor{}})
	require.ErrorIs(t, err, web.ErrNoCredentials)
}

func TestNewClientUnknownTransport(t *testing.T) {
	_, err := NewClient(ClientConfig{BearerToken: "tok", Transport: "carrier-pigeon"})
	require.ErrorContains(t, err, "unknown transport")
}

func TestNewClientAccountWithoutSession(t *testing.T) {
	_, err := NewClient(ClientConfig{
		Account:    &Account{Username: "ghost"},
		SessionDir: t.TempDir(),
		Executor:   &recordingExecutor{},
	})
	require.ErrorContains(t, err, "no session for account ghost")
}

func TestClientBearerRequests(t *testing.T) {
	ex := &recordingExecutor{}
	c, err := NewClient(ClientConfig{BearerToken: "tok", BaseURL: "https://api.example.com", Executor: ex})
	require.NoError(t, err)

	res, err := c.TweetsV2().GetTweet(context.Background(), parameters.NewGetTweetParameters("1"))
	require.NoError(t, err)
	require.True(t, res.Succeeded())
	assert.Equal(t, "ok", res.Model.Tweet.Text)

	_, err = c.TweetsV2().GetTweet(context.Background(), parameters.NewGetTweetParameters("1"))
	require.NoError(t, err)

	require.Len(t, ex.reqs, 2)
	assert.NotSame(t, ex.reqs[0], ex.reqs[1], "each call gets its own request context")
	assert.Equal(t, web.ModeBearer, ex.reqs[0].Credentials.Mode())
	assert.Equal(t, "https://api.example.com/2/tweets/1", ex.queries[0].URL)
}

func TestClientMetricsHook(t *testing.T) {
	type call struct {
		endpoint             string
		success, rateLimited bool
	}
	var (
		mu    sync.Mutex
		calls []call
	)
	statuses := []int{http.StatusOK, http.StatusTooManyRequests, 0}
	var i int
	ex := &recordingExecutor{respond: func(q *web.Query) (*web.Response, error) {
		status := statuses[i]
		i++
		if status == 0 {
			return nil, errors.New("connection reset")
		}
		return &web.Response{Endpoint: q.Endpoint, Status: status, Content: []byte(`{"title":"x"}`)}, nil
	}}

	c, err := NewClient(ClientConfig{
		BearerToken: "tok",
		Executor:    ex,
		MetricsHook: func(endpoint string, success, rateLimited bool) {
			mu.Lock()
			calls = append(calls, call{endpoint, success, rateLimited})
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	params := parameters.NewChangeTweetReplyVisibilityParameters("5", parameters.TweetReplyHidden)
	for range statuses {
		_, _ = c.TweetsV2().ChangeTweetReplyVisibility(context.Background(), params)
	}

	assert.Equal(t, []call{
		{"ChangeTweetReplyVisibility", true, false},
		{"ChangeTweetReplyVisibility", false, true},
		{"ChangeTweetReplyVisibility", false, false},
	}, calls)
}

func TestClientTransportErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	ex := &recordingExecutor{respond: func(*web.Query) (*web.Response, error) { return nil, boom }}
	c, err := NewClient(ClientConfig{BearerToken: "tok", Executor: ex})
	require.NoError(t, err)

	res, err := c.TweetsV2().PublishTweet(context.Background(), parameters.NewPublishTweetParameters("hi"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}

func TestClientSessionRotation(t *testing.T) {
	dir := t.TempDir()
	acc := &Account{Username: "alice", AuthToken: "tok", CT0: "stale"}

	ex := &recordingExecutor{respond: func(q *web.Query) (*web.Response, error) {
		return &web.Response{
			Endpoint: q.Endpoint,
			Status:   http.StatusOK,
			Headers:  map[string]string{"set-cookie": "ct0=fromserver; Path=/; Secure"},
			Content:  []byte(`{"data":{"id":"9","text":"hi"}}`),
		}, nil
	}}
	c, err := NewClient(ClientConfig{Account: acc, SessionDir: dir, Executor: ex})
	require.NoError(t, err)

	_, err = c.TweetsV2().PublishTweet(context.Background(), parameters.NewPublishTweetParameters("hi"))
	require.NoError(t, err)

	require.Len(t, ex.reqs, 1)
	sent := ex.reqs[0].Credentials
	assert.Equal(t, web.ModeSession, sent.Mode())
	assert.NotEqual(t, "stale", sent.CT0, "old ct0 is rotated before use")
	assert.Len(t, sent.CT0, 64)

	assert.Equal(t, "fromserver", acc.Credentials().CT0)
	authToken, ct0, err := loadSession(dir, "alice", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "tok", authToken)
	assert.Equal(t, "fromserver", ct0)
}

func TestClientLoadsSavedSession(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, saveSession(dir, "bob", "saved-tok", "saved-ct0"))

	acc := &Account{Username: "bob"}
	_, err := NewClient(ClientConfig{Account: acc, SessionDir: dir, Executor: &recordingExecutor{}})
	require.NoError(t, err)

	creds := acc.Credentials()
	assert.Equal(t, "saved-tok", creds.AuthToken)
	assert.Equal(t, "saved-ct0", creds.CT0)
}

func TestClientConcurrentPublish(t *testing.T) {
	ex := &recordingExecutor{respond: func(q *web.Query) (*web.Response, error) {
		return &web.Response{Endpoint: q.Endpoint, Status: http.StatusCreated, Content: q.Body}, nil
	}}
	c, err := NewClient(ClientConfig{BearerToken: "tok", Executor: ex})
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.TweetsV2().PublishTweet(context.Background(), parameters.NewPublishTweetParameters(fmt.Sprintf("tweet %d", i)))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, q := range ex.queries {
		var body struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.Unmarshal(q.Body, &body))
		seen[body.Text] = true
	}
	assert.Len(t, seen, n)
}

func TestClientRestyOAuth2(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth2/token":
			user, pass, ok := r.BasicAuth()
			if !ok || user != "key" || pass != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"access_token":"app-token","token_type":"bearer"}`)
		case "/2/tweets":
			if r.Header.Get("Authorization") != "Bearer app-token" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"title":"Unauthorized","status":401}`)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprintf(w, `{"data":[{"id":"1","text":"a"},{"id":"2","text":"b"}],"ids":%q}`, r.URL.Query().Get("ids"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := NewClient(ClientConfig{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		BaseURL:        srv.URL,
		Transport:      TransportResty,
	})
	require.NoError(t, err)

	res, err := c.TweetsV2().GetTweets(context.Background(), parameters.NewGetTweetsParameters("1", "2"))
	require.NoError(t, err)
	require.True(t, res.Succeeded(), "status %d", res.Response.Status)
	require.Len(t, res.Model.Tweets, 2)
	assert.Equal(t, "b", res.Model.Tweets[1].Text)
}
