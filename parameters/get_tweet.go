package parameters

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/google/go-querystring/query"
)

// TweetFieldsParameters selects which objects and fields the API returns
// alongside a tweet. Empty sets are left out of the query string.
type TweetFieldsParameters struct {
	Expansions  []string `url:"expansions,comma,omitempty"`
	MediaFields []string `url:"media.fields,comma,omitempty"`
	PlaceFields []string `url:"place.fields,comma,omitempty"`
	PollFields  []string `url:"poll.fields,comma,omitempty"`
	TweetFields []string `url:"tweet.fields,comma,omitempty"`
	UserFields  []string `url:"user.fields,comma,omitempty"`
}

// WithAllFields requests every expansion and field.
func (f *TweetFieldsParameters) WithAllFields() {
	f.Expansions = slices.Clone(AllExpansions)
	f.MediaFields = slices.Clone(AllMediaFields)
	f.PlaceFields = slices.Clone(AllPlaceFields)
	f.PollFields = slices.Clone(AllPollFields)
	f.TweetFields = slices.Clone(AllTweetFields)
	f.UserFields = slices.Clone(AllUserFields)
}

// Values encodes the field sets as query parameters.
func (f TweetFieldsParameters) Values() (url.Values, error) {
	v, err := query.Values(f)
	if err != nil {
		return nil, fmt.Errorf("encode tweet fields: %w", err)
	}
	return v, nil
}

// GetTweetParameters selects a single tweet for GET /2/tweets/:id.
type GetTweetParameters struct {
	TweetID string `url:"-"`
	TweetFieldsParameters
}

// NewGetTweetParameters returns parameters for the tweet with the given id.
func NewGetTweetParameters(tweetID string) *GetTweetParameters {
	return &GetTweetParameters{TweetID: tweetID}
}

// NewGetTweetParametersFromID is NewGetTweetParameters for numeric ids.
func NewGetTweetParametersFromID(tweetID int64) *GetTweetParameters {
	return NewGetTweetParameters(strconv.FormatInt(tweetID, 10))
}

// Clone returns a copy; field-set slices are shared.
func (p *GetTweetParameters) Clone() *GetTweetParameters {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// GetTweetsParameters selects several tweets for GET /2/tweets.
type GetTweetsParameters struct {
	TweetIDs []string `url:"ids,comma"`
	TweetFieldsParameters
}

// NewGetTweetsParameters returns parameters for the given tweet ids.
func NewGetTweetsParameters(tweetIDs ...string) *GetTweetsParameters {
	return &GetTweetsParameters{TweetIDs: tweetIDs}
}

// NewGetTweetsParametersFromIDs is NewGetTweetsParameters for numeric ids.
func NewGetTweetsParametersFromIDs(tweetIDs ...int64) *GetTweetsParameters {
	ids := make([]string, 0, len(tweetIDs))
	for _, id := range tweetIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	return &GetTweetsParameters{TweetIDs: ids}
}

// Clone returns a copy; slices are shared.
func (p *GetTweetsParameters) Clone() *GetTweetsParameters {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Values encodes ids and field sets as query parameters.
func (p GetTweetsParameters) Values() (url.Values, error) {
	v, err := query.Values(p)
	if err != nil {
		return nil, fmt.Errorf("encode tweets query: %w", err)
	}
	return v, nil
}
