package twitter

import (
	"context"

	"github.com/anatolykoptev/go-twitterapi/internal/controllers"
	"github.com/anatolykoptev/go-twitterapi/models"
	"github.com/anatolykoptev/go-twitterapi/parameters"
	"github.com/anatolykoptev/go-twitterapi/web"
)

// TweetsV2Requester runs the v2 tweet operations with the client's
// credentials. Each call gets its own request context.
type TweetsV2Requester struct {
	controller *controllers.TweetsV2Controller
	newRequest func() *web.Request
}

// GetTweet fetches one tweet.
func (r *TweetsV2Requester) GetTweet(ctx context.Context, params *parameters.GetTweetParameters) (*web.Result[models.TweetV2Response], error) {
	return r.controller.GetTweet(ctx, params, r.newRequest())
}

// GetTweets fetches several tweets in one call.
func (r *TweetsV2Requester) GetTweets(ctx context.Context, params *parameters.GetTweetsParameters) (*web.Result[models.TweetsV2Response], error) {
	return r.controller.GetTweets(ctx, params, r.newRequest())
}

// ChangeTweetReplyVisibility hides or unhides a reply.
func (r *TweetsV2Requester) ChangeTweetReplyVisibility(ctx context.Context, params *parameters.ChangeTweetReplyVisibilityParameters) (*web.Result[models.TweetHideV2Response], error) {
	return r.controller.ChangeTweetReplyVisibility(ctx, params, r.newRequest())
}

// PublishTweet posts a tweet.
func (r *TweetsV2Requester) PublishTweet(ctx context.Context, params *parameters.PublishTweetParameters) (*web.Result[models.TweetV2Response], error) {
	return r.controller.PublishTweet(ctx, params, r.newRequest())
}
