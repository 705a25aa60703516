package parameters

// PublishTweetParameters is the request body of POST /2/tweets.
//
// Pointer fields are optional: nil means the key is left out of the request,
// while a non-nil pointer is always sent, even when it points to "" or false.
type PublishTweetParameters struct {
	Text string

	// DirectMessageDeepLink tweets a link directly to a Direct Message conversation with an account.
	DirectMessageDeepLink *string

	// ForSuperFollowersOnly restricts the tweet to Super Followers.
	ForSuperFollowersOnly *bool

	// Reply describes the tweet being replied to.
	Reply *PublishTweetReplyParameters

	// Media attaches uploaded media. Mutually exclusive with QuoteTweetID and polls.
	Media *PublishTweetMediaParameters

	// QuoteTweetID links to the tweet being quoted.
	QuoteTweetID *string
}

// NewPublishTweetParameters returns parameters for a plain text tweet.
func NewPublishTweetParameters(text string) *PublishTweetParameters {
	return &PublishTweetParameters{Text: text}
}

// Clone returns a copy whose Reply and Media are new instances owned by the copy.
// Slices inside them are shared with p.
func (p *PublishTweetParameters) Clone() *PublishTweetParameters {
	if p == nil {
		return nil
	}
	c := &PublishTweetParameters{
		Text:                  p.Text,
		DirectMessageDeepLink: p.DirectMessageDeepLink,
		ForSuperFollowersOnly: p.ForSuperFollowersOnly,
		QuoteTweetID:          p.QuoteTweetID,
	}
	if p.Reply != nil {
		c.Reply = p.Reply.Clone()
	}
	if p.Media != nil {
		c.Media = p.Media.Clone()
	}
	return c
}

// MarshalJSON implements json.Marshaler.
func (p PublishTweetParameters) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.always("text", p.Text)
	if p.DirectMessageDeepLink != nil {
		w.always("direct_message_deep_link", *p.DirectMessageDeepLink)
	}
	if p.ForSuperFollowersOnly != nil {
		w.always("for_super_followers_only", *p.ForSuperFollowersOnly)
	}
	w.optional("reply", p.Reply, p.Reply != nil)
	w.optional("media", p.Media, p.Media != nil)
	if p.QuoteTweetID != nil {
		w.always("quote_tweet_id", *p.QuoteTweetID)
	}
	return w.bytes()
}

// PublishTweetReplyParameters describes the tweet being replied to.
type PublishTweetReplyParameters struct {
	// InReplyToTweetID must be set whenever ExcludeReplyUserIDs is.
	InReplyToTweetID string

	// ExcludeReplyUserIDs removes users from the reply thread.
	ExcludeReplyUserIDs []string
}

// Clone returns a shallow copy; ExcludeReplyUserIDs is shared.
func (p *PublishTweetReplyParameters) Clone() *PublishTweetReplyParameters {
	if p == nil {
		return nil
	}
	return &PublishTweetReplyParameters{
		InReplyToTweetID:    p.InReplyToTweetID,
		ExcludeReplyUserIDs: p.ExcludeReplyUserIDs,
	}
}

// MarshalJSON implements json.Marshaler.
func (p PublishTweetReplyParameters) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.always("in_reply_to_tweet_id", p.InReplyToTweetID)
	w.optional("exclude_reply_user_ids", p.ExcludeReplyUserIDs, p.ExcludeReplyUserIDs != nil)
	return w.bytes()
}

// PublishTweetMediaParameters attaches uploaded media to a tweet.
type PublishTweetMediaParameters struct {
	// MediaIDs is always sent; it is required whenever TaggedUserIDs is set.
	MediaIDs []string

	// TaggedUserIDs tags users in the attached photos. Users with photo
	// tagging disabled are silently dropped by the API.
	TaggedUserIDs []string
}

// Clone returns a shallow copy; both slices are shared.
func (p *PublishTweetMediaParameters) Clone() *PublishTweetMediaParameters {
	if p == nil {
		return nil
	}
	return &PublishTweetMediaParameters{
		MediaIDs:      p.MediaIDs,
		TaggedUserIDs: p.TaggedUserIDs,
	}
}

// MarshalJSON implements json.Marshaler.
func (p PublishTweetMediaParameters) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.always("media_ids", nonNil(p.MediaIDs))
	w.optional("tagged_user_ids", p.TaggedUserIDs, p.TaggedUserIDs != nil)
	return w.bytes()
}

// String returns a pointer to s, for optional string fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for optional bool fields.
func Bool(b bool) *bool { return &b }
