package models

// ErrorV2 is a partial error reported next to data, e.g. a missing tweet in a
// multi-id lookup.
type ErrorV2 struct {
	Value        string `json:"value,omitempty"`
	Detail       string `json:"detail"`
	Title        string `json:"title"`
	ResourceType string `json:"resource_type,omitempty"`
	Parameter    string `json:"parameter,omitempty"`
	ResourceID   string `json:"resource_id,omitempty"`
	Type         string `json:"type"`
}

// TweetV2Response is returned by GET /2/tweets/:id and POST /2/tweets.
type TweetV2Response struct {
	Tweet    *TweetV2         `json:"data"`
	Includes *TweetIncludesV2 `json:"includes,omitempty"`
	Errors   []ErrorV2        `json:"errors,omitempty"`
}

// TweetsV2Response is returned by GET /2/tweets.
type TweetsV2Response struct {
	Tweets   []TweetV2        `json:"data"`
	Includes *TweetIncludesV2 `json:"includes,omitempty"`
	Errors   []ErrorV2        `json:"errors,omitempty"`
}

// TweetHideV2Response is returned by PUT /2/tweets/:id/hidden.
type TweetHideV2Response struct {
	Data struct {
		Hidden bool `json:"hidden"`
	} `json:"data"`
}
