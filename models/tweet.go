package models

import (
	"regexp"
	"strings"
	"time"
)

var cashtagRe = regexp.MustCompile(`\$([A-Z]{2,10})`)

// TweetV2 is a tweet object as returned by the v2 API.
type TweetV2 struct {
	ID                  string               `json:"id"`
	Text                string               `json:"text"`
	AuthorID            string               `json:"author_id,omitempty"`
	ConversationID      string               `json:"conversation_id,omitempty"`
	CreatedAt           time.Time            `json:"created_at,omitzero"`
	InReplyToUserID     string               `json:"in_reply_to_user_id,omitempty"`
	Lang                string               `json:"lang,omitempty"`
	PossiblySensitive   bool                 `json:"possibly_sensitive,omitempty"`
	ReplySettings       string               `json:"reply_settings,omitempty"`
	Source              string               `json:"source,omitempty"`
	EditHistoryTweetIDs []string             `json:"edit_history_tweet_ids,omitempty"`
	PublicMetrics       *TweetPublicMetrics  `json:"public_metrics,omitempty"`
	ReferencedTweets    []TweetReferenceV2   `json:"referenced_tweets,omitempty"`
	Attachments         *TweetAttachmentsV2  `json:"attachments,omitempty"`
	Entities            *TweetEntitiesV2     `json:"entities,omitempty"`
	Geo                 *TweetGeoV2          `json:"geo,omitempty"`
	EditControls        *TweetEditControlsV2 `json:"edit_controls,omitempty"`
}

// TweetPublicMetrics holds engagement counters.
type TweetPublicMetrics struct {
	RetweetCount    int `json:"retweet_count"`
	ReplyCount      int `json:"reply_count"`
	LikeCount       int `json:"like_count"`
	QuoteCount      int `json:"quote_count"`
	BookmarkCount   int `json:"bookmark_count"`
	ImpressionCount int `json:"impression_count"`
}

// TweetReferenceV2 points at a replied-to, quoted or retweeted tweet.
type TweetReferenceV2 struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type TweetAttachmentsV2 struct {
	MediaKeys []string `json:"media_keys,omitempty"`
	PollIDs   []string `json:"poll_ids,omitempty"`
}

type TweetGeoV2 struct {
	PlaceID string `json:"place_id,omitempty"`
}

type TweetEditControlsV2 struct {
	EditsRemaining int       `json:"edits_remaining"`
	IsEditEligible bool      `json:"is_edit_eligible"`
	EditableUntil  time.Time `json:"editable_until,omitzero"`
}

// TweetEntitiesV2 holds the entities parsed out of the tweet text.
type TweetEntitiesV2 struct {
	Cashtags []TagEntityV2     `json:"cashtags,omitempty"`
	Hashtags []TagEntityV2     `json:"hashtags,omitempty"`
	Mentions []MentionEntityV2 `json:"mentions,omitempty"`
	URLs     []URLEntityV2     `json:"urls,omitempty"`
}

type TagEntityV2 struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Tag   string `json:"tag"`
}

type MentionEntityV2 struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Username string `json:"username"`
	ID       string `json:"id,omitempty"`
}

type URLEntityV2 struct {
	Start       int    `json:"start"`
	End         int    `json:"end"`
	URL         string `json:"url"`
	ExpandedURL string `json:"expanded_url,omitempty"`
	DisplayURL  string `json:"display_url,omitempty"`
	MediaKey    string `json:"media_key,omitempty"`
}

// Cashtags returns the upper-cased $TICKER symbols of the tweet, deduplicated
// in order of appearance. Entities are used when the API returned them,
// otherwise the text is scanned.
func (t *TweetV2) Cashtags() []string {
	if t.Entities != nil && len(t.Entities.Cashtags) > 0 {
		seen := make(map[string]bool)
		var result []string
		for _, c := range t.Entities.Cashtags {
			tag := strings.ToUpper(c.Tag)
			if !seen[tag] {
				seen[tag] = true
				result = append(result, tag)
			}
		}
		return result
	}
	return extractCashtags(t.Text)
}

// ReplyTo returns the id of the tweet this one replies to, or "".
func (t *TweetV2) ReplyTo() string {
	for _, r := range t.ReferencedTweets {
		if r.Type == "replied_to" {
			return r.ID
		}
	}
	return ""
}

func extractCashtags(text string) []string {
	matches := cashtagRe.FindAllStringSubmatch(strings.ToUpper(text), -1)
	seen := make(map[string]bool)
	var result []string
	for _, m := range matches {
		if len(m) >= 2 && !seen[m[1]] {
			seen[m[1]] = true
			result = append(result, m[1])
		}
	}
	return result
}
