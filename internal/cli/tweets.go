package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go-twitterapi/parameters"
)

func newGetCmd(opts *options) *cobra.Command {
	var allFields bool
	cmd := &cobra.Command{
		Use:   "get <tweet-id>",
		Short: "Fetch one tweet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			params := parameters.NewGetTweetParameters(args[0])
			if allFields {
				params.WithAllFields()
			}
			res, err := c.TweetsV2().GetTweet(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&allFields, "all-fields", false, "request every expansion and field")
	return cmd
}

func newGetManyCmd(opts *options) *cobra.Command {
	var allFields bool
	cmd := &cobra.Command{
		Use:   "get-many <tweet-id>...",
		Short: "Fetch several tweets in one call",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			params := parameters.NewGetTweetsParameters(args...)
			if allFields {
				params.WithAllFields()
			}
			res, err := c.TweetsV2().GetTweets(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&allFields, "all-fields", false, "request every expansion and field")
	return cmd
}

func newReplyVisibilityCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reply-visibility <tweet-id> <hidden|visible>",
		Short: "Hide or unhide a reply to one of your tweets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			visibility, err := parameters.ParseTweetReplyVisibility(args[1])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			params := parameters.NewChangeTweetReplyVisibilityParameters(args[0], visibility)
			res, err := c.TweetsV2().ChangeTweetReplyVisibility(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
}

// publishFlags holds the optional publish fields. Only flags the user set
// end up in the request body.
type publishFlags struct {
	replyTo           string
	excludeReplyUsers []string
	mediaIDs          []string
	taggedUsers       []string
	quote             string
	dmLink            string
	superFollowers    bool
}

func (f *publishFlags) parameters(cmd *cobra.Command, text string) *parameters.PublishTweetParameters {
	params := parameters.NewPublishTweetParameters(text)
	changed := cmd.Flags().Changed

	if changed("reply-to") {
		params.Reply = &parameters.PublishTweetReplyParameters{InReplyToTweetID: f.replyTo}
		if changed("exclude-reply-users") {
			params.Reply.ExcludeReplyUserIDs = nonNil(f.excludeReplyUsers)
		}
	}
	if changed("media-ids") || changed("tagged-users") {
		params.Media = &parameters.PublishTweetMediaParameters{MediaIDs: f.mediaIDs}
		if changed("tagged-users") {
			params.Media.TaggedUserIDs = nonNil(f.taggedUsers)
		}
	}
	if changed("quote") {
		params.QuoteTweetID = parameters.String(f.quote)
	}
	if changed("dm-link") {
		params.DirectMessageDeepLink = parameters.String(f.dmLink)
	}
	if changed("super-followers-only") {
		params.ForSuperFollowersOnly = parameters.Bool(f.superFollowers)
	}
	return params
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func newPublishCmd(opts *options) *cobra.Command {
	var f publishFlags
	cmd := &cobra.Command{
		Use:   "publish <text>...",
		Short: "Publish a tweet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			params := f.parameters(cmd, strings.Join(args, " "))
			res, err := c.TweetsV2().PublishTweet(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&f.replyTo, "reply-to", "", "tweet id to reply to")
	cmd.Flags().StringSliceVar(&f.excludeReplyUsers, "exclude-reply-users", nil, "user ids to leave out of the reply mentions")
	cmd.Flags().StringSliceVar(&f.mediaIDs, "media-ids", nil, "uploaded media ids to attach")
	cmd.Flags().StringSliceVar(&f.taggedUsers, "tagged-users", nil, "user ids tagged in the media")
	cmd.Flags().StringVar(&f.quote, "quote", "", "tweet id to quote")
	cmd.Flags().StringVar(&f.dmLink, "dm-link", "", "direct message deep link")
	cmd.Flags().BoolVar(&f.superFollowers, "super-followers-only", false, "restrict the tweet to super followers")
	return cmd
}
