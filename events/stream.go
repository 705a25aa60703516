package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// ErrMissingForUserID is returned for payloads without for_user_id.
var ErrMissingForUserID = errors.New("account activity payload without for_user_id")

// Stream turns raw account-activity payloads into event args and hands them
// to registered callbacks. Registration and Handle are safe for concurrent use.
type Stream struct {
	mu        sync.RWMutex
	onMuted   []func(*UserMutedEventArgs)
	onUnmuted []func(*UserUnmutedEventArgs)
}

// NewStream returns a Stream with no subscribers.
func NewStream() *Stream {
	return &Stream{}
}

// OnUserMuted registers fn for mute events.
func (s *Stream) OnUserMuted(fn func(*UserMutedEventArgs)) {
	s.mu.Lock()
	s.onMuted = append(s.onMuted, fn)
	s.mu.Unlock()
}

// OnUserUnmuted registers fn for unmute events.
func (s *Stream) OnUserUnmuted(fn func(*UserUnmutedEventArgs)) {
	s.mu.Lock()
	s.onUnmuted = append(s.onUnmuted, fn)
	s.mu.Unlock()
}

type activityPayload struct {
	ForUserID  string          `json:"for_user_id"`
	MuteEvents []userPairEvent `json:"mute_events"`
}

type userPairEvent struct {
	Type             string `json:"type"`
	CreatedTimestamp string `json:"created_timestamp"`
	Source           User   `json:"source"`
	Target           User   `json:"target"`
}

// Handle parses one webhook payload and invokes the callbacks for every
// event it contains, in order. It returns the number of events dispatched.
func (s *Stream) Handle(body []byte) (int, error) {
	var p activityPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return 0, fmt.Errorf("parse account activity: %w", err)
	}
	if p.ForUserID == "" {
		return 0, ErrMissingForUserID
	}

	s.mu.RLock()
	onMuted := s.onMuted
	onUnmuted := s.onUnmuted
	s.mu.RUnlock()

	dispatched := 0
	for _, e := range p.MuteEvents {
		ev := AccountActivityEvent[UserPair]{
			AccountUserID: p.ForUserID,
			EventDate:     parseTimestampMillis(e.CreatedTimestamp),
			Args:          UserPair{Source: e.Source, Target: e.Target},
			JSON:          string(body),
		}
		switch e.Type {
		case "mute":
			args := NewUserMutedEventArgs(ev)
			if args.InResultOf() == UserMutedUnknown {
				slog.Warn("mute event not initiated by account user",
					slog.String("for_user_id", p.ForUserID),
					slog.String("source", e.Source.ID))
			}
			for _, fn := range onMuted {
				fn(args)
			}
		case "unmute":
			args := NewUserUnmutedEventArgs(ev)
			for _, fn := range onUnmuted {
				fn(args)
			}
		default:
			slog.Debug("skip mute event", slog.String("type", e.Type))
			continue
		}
		dispatched++
	}
	return dispatched, nil
}

// parseTimestampMillis parses a millisecond epoch string, returning the zero
// time when it is missing or invalid.
func parseTimestampMillis(v string) time.Time {
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
