package models

// MediaV2 is an expanded media attachment.
type MediaV2 struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	URL             string `json:"url,omitempty"`
	PreviewImageURL string `json:"preview_image_url,omitempty"`
	AltText         string `json:"alt_text,omitempty"`
	DurationMs      int    `json:"duration_ms,omitempty"`
	Height          int    `json:"height,omitempty"`
	Width           int    `json:"width,omitempty"`
}

// PlaceV2 is an expanded geo place.
type PlaceV2 struct {
	ID              string   `json:"id"`
	FullName        string   `json:"full_name"`
	Name            string   `json:"name,omitempty"`
	Country         string   `json:"country,omitempty"`
	CountryCode     string   `json:"country_code,omitempty"`
	PlaceType       string   `json:"place_type,omitempty"`
	ContainedWithin []string `json:"contained_within,omitempty"`
}

// PollV2 is an expanded poll.
type PollV2 struct {
	ID              string         `json:"id"`
	Options         []PollOptionV2 `json:"options"`
	DurationMinutes int            `json:"duration_minutes,omitempty"`
	EndDatetime     string         `json:"end_datetime,omitempty"`
	VotingStatus    string         `json:"voting_status,omitempty"`
}

type PollOptionV2 struct {
	Position int    `json:"position"`
	Label    string `json:"label"`
	Votes    int    `json:"votes"`
}

// TweetIncludesV2 holds the objects requested through expansions.
type TweetIncludesV2 struct {
	Users  []UserV2  `json:"users,omitempty"`
	Tweets []TweetV2 `json:"tweets,omitempty"`
	Media  []MediaV2 `json:"media,omitempty"`
	Places []PlaceV2 `json:"places,omitempty"`
	Polls  []PollV2  `json:"polls,omitempty"`
}

// User returns the included user with the given id.
func (inc *TweetIncludesV2) User(id string) (*UserV2, bool) {
	if inc == nil {
		return nil, false
	}
	for i := range inc.Users {
		if inc.Users[i].ID == id {
			return &inc.Users[i], true
		}
	}
	return nil, false
}

// MediaByKey returns the included media for the given key.
func (inc *TweetIncludesV2) MediaByKey(key string) (*MediaV2, bool) {
	if inc == nil {
		return nil, false
	}
	for i := range inc.Media {
		if inc.Media[i].MediaKey == key {
			return &inc.Media[i], true
		}
	}
	return nil, false
}
