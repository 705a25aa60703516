package parameters

// Expansion values for the expansions query parameter.
const (
	ExpansionAttachmentsPollIDs         = "attachments.poll_ids"
	ExpansionAttachmentsMediaKeys       = "attachments.media_keys"
	ExpansionAuthorID                   = "author_id"
	ExpansionEditHistoryTweetIDs        = "edit_history_tweet_ids"
	ExpansionEntitiesMentionsUsername   = "entities.mentions.username"
	ExpansionGeoPlaceID                 = "geo.place_id"
	ExpansionInReplyToUserID            = "in_reply_to_user_id"
	ExpansionReferencedTweetsID         = "referenced_tweets.id"
	ExpansionReferencedTweetsIDAuthorID = "referenced_tweets.id.author_id"
)

// AllExpansions lists every tweet expansion.
var AllExpansions = []string{
	ExpansionAttachmentsPollIDs,
	ExpansionAttachmentsMediaKeys,
	ExpansionAuthorID,
	ExpansionEditHistoryTweetIDs,
	ExpansionEntitiesMentionsUsername,
	ExpansionGeoPlaceID,
	ExpansionInReplyToUserID,
	ExpansionReferencedTweetsID,
	ExpansionReferencedTweetsIDAuthorID,
}

// AllMediaFields lists every media.fields value.
var AllMediaFields = []string{
	"alt_text",
	"duration_ms",
	"height",
	"media_key",
	"preview_image_url",
	"public_metrics",
	"type",
	"url",
	"variants",
	"width",
}

// AllPlaceFields lists every place.fields value.
var AllPlaceFields = []string{
	"contained_within",
	"country",
	"country_code",
	"full_name",
	"geo",
	"id",
	"name",
	"place_type",
}

// AllPollFields lists every poll.fields value.
var AllPollFields = []string{
	"duration_minutes",
	"end_datetime",
	"id",
	"options",
	"voting_status",
}

// AllTweetFields lists every tweet.fields value.
var AllTweetFields = []string{
	"attachments",
	"author_id",
	"context_annotations",
	"conversation_id",
	"created_at",
	"edit_controls",
	"edit_history_tweet_ids",
	"entities",
	"geo",
	"id",
	"in_reply_to_user_id",
	"lang",
	"possibly_sensitive",
	"public_metrics",
	"referenced_tweets",
	"reply_settings",
	"source",
	"text",
	"withheld",
}

// AllUserFields lists every user.fields value.
var AllUserFields = []string{
	"created_at",
	"description",
	"entities",
	"id",
	"location",
	"name",
	"pinned_tweet_id",
	"profile_image_url",
	"protected",
	"public_metrics",
	"url",
	"username",
	"verified",
	"withheld",
}
