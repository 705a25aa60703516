package parameters

import "fmt"

// TweetReplyVisibility is the visibility of a reply to a conversation the
// authenticated user started.
type TweetReplyVisibility int

const (
	TweetReplyVisible TweetReplyVisibility = iota
	TweetReplyHidden
)

func (v TweetReplyVisibility) String() string {
	switch v {
	case TweetReplyVisible:
		return "visible"
	case TweetReplyHidden:
		return "hidden"
	}
	return fmt.Sprintf("TweetReplyVisibility(%d)", int(v))
}

// ParseTweetReplyVisibility parses "hidden" or "visible".
func ParseTweetReplyVisibility(s string) (TweetReplyVisibility, error) {
	switch s {
	case "hidden":
		return TweetReplyHidden, nil
	case "visible":
		return TweetReplyVisible, nil
	}
	return 0, fmt.Errorf("unknown reply visibility %q", s)
}

// ChangeTweetReplyVisibilityParameters hides or unhides a reply via
// PUT /2/tweets/:id/hidden.
type ChangeTweetReplyVisibilityParameters struct {
	TweetID    string
	Visibility TweetReplyVisibility
}

// NewChangeTweetReplyVisibilityParameters returns parameters for the given reply.
func NewChangeTweetReplyVisibilityParameters(tweetID string, visibility TweetReplyVisibility) *ChangeTweetReplyVisibilityParameters {
	return &ChangeTweetReplyVisibilityParameters{TweetID: tweetID, Visibility: visibility}
}

// Clone returns a copy.
func (p *ChangeTweetReplyVisibilityParameters) Clone() *ChangeTweetReplyVisibilityParameters {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// MarshalJSON implements json.Marshaler. The tweet id travels in the path,
// so only the hidden flag is in the body.
func (p ChangeTweetReplyVisibilityParameters) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.always("hidden", p.Visibility == TweetReplyHidden)
	return w.bytes()
}
