// Package cli implements the tweetv2 command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	twitter "github.com/anatolykoptev/go-twitterapi"
	"github.com/anatolykoptev/go-twitterapi/web"
)

type options struct {
	cfgFile  string
	logLevel string
	out      io.Writer

	// newClient is replaced in tests.
	newClient func(cfg twitter.ClientConfig) (*twitter.Client, error)
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tweetv2",
		Short: "Call the Twitter v2 tweet endpoints",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(opts.out)

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "twitter.yaml", "config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newGetCmd(opts))
	cmd.AddCommand(newGetManyCmd(opts))
	cmd.AddCommand(newReplyVisibilityCmd(opts))
	cmd.AddCommand(newPublishCmd(opts))
	cmd.AddCommand(newMuteEventsCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(&options{out: os.Stdout, newClient: twitter.NewClient}).Execute()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// client loads the config file and builds a client.
func (o *options) client() (*twitter.Client, error) {
	cfg, err := twitter.LoadConfig(o.cfgFile)
	if err != nil {
		return nil, err
	}
	return o.newClient(cfg)
}

// printResult writes the model of a successful result as JSON, or turns a
// failed result into an error.
func printResult[T any](w io.Writer, res *web.Result[T]) error {
	if !res.Succeeded() {
		return res.APIError
	}
	return printJSON(w, res.Model)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
