// Package events models account-activity webhook events as immutable
// argument values handed to subscriber callbacks.
package events

import "time"

// User is the account-activity representation of a user.
type User struct {
	ID              string `json:"id_str"`
	Name            string `json:"name"`
	ScreenName      string `json:"screen_name"`
	Location        string `json:"location,omitempty"`
	Description     string `json:"description,omitempty"`
	Protected       bool   `json:"protected"`
	Verified        bool   `json:"verified"`
	FollowersCount  int    `json:"followers_count"`
	FriendsCount    int    `json:"friends_count"`
	StatusesCount   int    `json:"statuses_count"`
	ProfileImageURL string `json:"profile_image_url_https,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// UserPair is the (initiator, target) pair of a user-to-user event.
type UserPair struct {
	Source User
	Target User
}

// AccountActivityEvent is the envelope the webhook dispatcher produces for
// every received event.
type AccountActivityEvent[T any] struct {
	// AccountUserID is the id of the account whose subscription delivered the event.
	AccountUserID string
	EventDate     time.Time
	Args          T
	// JSON is the raw payload the event was parsed from.
	JSON string
}

// accountActivityEventArgs holds the envelope metadata shared by every
// event-args type.
type accountActivityEventArgs struct {
	accountUserID string
	eventDate     time.Time
	json          string
}

func newAccountActivityEventArgs[T any](ev AccountActivityEvent[T]) accountActivityEventArgs {
	return accountActivityEventArgs{
		accountUserID: ev.AccountUserID,
		eventDate:     ev.EventDate,
		json:          ev.JSON,
	}
}

// AccountUserID returns the id of the subscribed account.
func (a accountActivityEventArgs) AccountUserID() string { return a.accountUserID }

// EventDate returns when the event happened.
func (a accountActivityEventArgs) EventDate() time.Time { return a.eventDate }

// JSON returns the raw webhook payload.
func (a accountActivityEventArgs) JSON() string { return a.json }
