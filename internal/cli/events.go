package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go-twitterapi/events"
)

type muteEventLine struct {
	Type          string    `json:"type"`
	AccountUserID string    `json:"account_user_id"`
	EventDate     time.Time `json:"event_date,omitzero"`
	By            string    `json:"by"`
	User          string    `json:"user"`
	InResultOf    string    `json:"in_result_of"`
}

func newMuteEventsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mute-events <payload.json|->",
		Short: "Decode a saved account-activity payload into mute events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readPayload(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			var lines []muteEventLine
			s := events.NewStream()
			s.OnUserMuted(func(e *events.UserMutedEventArgs) {
				lines = append(lines, muteEventLine{
					Type:          "mute",
					AccountUserID: e.AccountUserID(),
					EventDate:     e.EventDate(),
					By:            e.MutedBy().ID,
					User:          e.MutedUser().ID,
					InResultOf:    e.InResultOf().String(),
				})
			})
			s.OnUserUnmuted(func(e *events.UserUnmutedEventArgs) {
				lines = append(lines, muteEventLine{
					Type:          "unmute",
					AccountUserID: e.AccountUserID(),
					EventDate:     e.EventDate(),
					By:            e.UnmutedBy().ID,
					User:          e.UnmutedUser().ID,
					InResultOf:    e.InResultOf().String(),
				})
			})

			if _, err := s.Handle(body); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), lines)
		},
	}
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return body, nil
}
