// Package controllers turns parameter objects into HTTP queries. Every
// operation takes an explicit request context so it can be exercised
// with a fake executor.
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/anatolykoptev/go-twitterapi/models"
	"github.com/anatolykoptev/go-twitterapi/parameters"
	"github.com/anatolykoptev/go-twitterapi/web"
)

var errNilParameters = errors.New("parameters must not be nil")

// TweetsV2Controller issues the v2 tweet calls. It holds no per-call state and
// is safe for concurrent use.
type TweetsV2Controller struct {
	executor web.Executor
}

// NewTweetsV2Controller returns a controller that sends queries through executor.
func NewTweetsV2Controller(executor web.Executor) *TweetsV2Controller {
	return &TweetsV2Controller{executor: executor}
}

// GetTweet fetches one tweet.
func (c *TweetsV2Controller) GetTweet(ctx context.Context, params *parameters.GetTweetParameters, req *web.Request) (*web.Result[models.TweetV2Response], error) {
	if params == nil {
		return nil, fmt.Errorf("GetTweet: %w", errNilParameters)
	}
	ep := Endpoints["GetTweet"]
	path, err := ep.Path(params.TweetID)
	if err != nil {
		return nil, err
	}
	query, err := params.Values()
	if err != nil {
		return nil, fmt.Errorf("GetTweet: %w", err)
	}
	return execute[models.TweetV2Response](ctx, c.executor, req, ep, path, query, nil)
}

// GetTweets fetches several tweets in one call.
func (c *TweetsV2Controller) GetTweets(ctx context.Context, params *parameters.GetTweetsParameters, req *web.Request) (*web.Result[models.TweetsV2Response], error) {
	if params == nil {
		return nil, fmt.Errorf("GetTweets: %w", errNilParameters)
	}
	ep := Endpoints["GetTweets"]
	query, err := params.Values()
	if err != nil {
		return nil, fmt.Errorf("GetTweets: %w", err)
	}
	return execute[models.TweetsV2Response](ctx, c.executor, req, ep, ep.Route, query, nil)
}

// ChangeTweetReplyVisibility hides or unhides a reply.
func (c *TweetsV2Controller) ChangeTweetReplyVisibility(ctx context.Context, params *parameters.ChangeTweetReplyVisibilityParameters, req *web.Request) (*web.Result[models.TweetHideV2Response], error) {
	if params == nil {
		return nil, fmt.Errorf("ChangeTweetReplyVisibility: %w", errNilParameters)
	}
	ep := Endpoints["ChangeTweetReplyVisibility"]
	path, err := ep.Path(params.TweetID)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("ChangeTweetReplyVisibility: %w", err)
	}
	return execute[models.TweetHideV2Response](ctx, c.executor, req, ep, path, nil, body)
}

// PublishTweet creates a tweet.
func (c *TweetsV2Controller) PublishTweet(ctx context.Context, params *parameters.PublishTweetParameters, req *web.Request) (*web.Result[models.TweetV2Response], error) {
	if params == nil {
		return nil, fmt.Errorf("PublishTweet: %w", errNilParameters)
	}
	ep := Endpoints["PublishTweet"]
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("PublishTweet: %w", err)
	}
	return execute[models.TweetV2Response](ctx, c.executor, req, ep, ep.Route, nil, body)
}

// execute performs exactly one exchange and wraps its response. Transport
// errors come back untouched.
func execute[T any](ctx context.Context, executor web.Executor, req *web.Request, ep Endpoint, path string, query url.Values, body []byte) (*web.Result[T], error) {
	q := &web.Query{
		Endpoint: ep.Name,
		Method:   ep.Method,
		URL:      req.URL(path, query),
		Body:     body,
	}
	resp, err := executor.Execute(ctx, q, req)
	if err != nil {
		return nil, err
	}
	return web.NewResult[T](resp)
}
