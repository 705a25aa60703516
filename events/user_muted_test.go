package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mutedEnvelope(accountID, muterID, mutedID string) AccountActivityEvent[UserPair] {
	return AccountActivityEvent[UserPair]{
		AccountUserID: accountID,
		EventDate:     time.UnixMilli(1517588749178),
		Args: UserPair{
			Source: User{ID: muterID, ScreenName: "muter"},
			Target: User{ID: mutedID, ScreenName: "muted"},
		},
		JSON: `{"for_user_id":"` + accountID + `"}`,
	}
}

func TestUserMutedEventArgs_SelfInitiated(t *testing.T) {
	args := NewUserMutedEventArgs(mutedEnvelope("42", "42", "7"))

	assert.Equal(t, UserMutedAccountUserMutingAnotherUser, args.InResultOf())
	assert.Equal(t, "42", args.MutedBy().ID)
	assert.Equal(t, "7", args.MutedUser().ID)
	assert.Equal(t, "42", args.AccountUserID())
	assert.Equal(t, int64(1517588749178), args.EventDate().UnixMilli())
	assert.Equal(t, `{"for_user_id":"42"}`, args.JSON())
}

func TestUserMutedEventArgs_Classification(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		muterID   string
		want      UserMutedRaisedInResultOf
	}{
		{"account mutes someone", "42", "42", UserMutedAccountUserMutingAnotherUser},
		{"someone else mutes", "42", "7", UserMutedUnknown},
		{"empty muter id", "42", "", UserMutedUnknown},
		{"ids compared as strings", "42", "042", UserMutedUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := NewUserMutedEventArgs(mutedEnvelope(tt.accountID, tt.muterID, "1"))
			assert.Equal(t, tt.want, args.InResultOf())
		})
	}
}

func TestUserMutedEventArgs_Immutable(t *testing.T) {
	ev := mutedEnvelope("42", "42", "7")
	args := NewUserMutedEventArgs(ev)

	// the envelope is copied at construction
	ev.Args.Source.ID = "99"
	ev.AccountUserID = "99"
	assert.Equal(t, "42", args.MutedBy().ID)
	assert.Equal(t, "42", args.AccountUserID())

	// accessors hand out copies
	u := args.MutedUser()
	u.ID = "changed"
	assert.Equal(t, "7", args.MutedUser().ID)
	assert.Equal(t, UserMutedAccountUserMutingAnotherUser, args.InResultOf())
}

func TestUserUnmutedEventArgs(t *testing.T) {
	args := NewUserUnmutedEventArgs(mutedEnvelope("42", "42", "7"))
	assert.Equal(t, UserUnmutedAccountUserUnmutingAnotherUser, args.InResultOf())
	assert.Equal(t, "42", args.UnmutedBy().ID)
	assert.Equal(t, "7", args.UnmutedUser().ID)

	other := NewUserUnmutedEventArgs(mutedEnvelope("42", "8", "7"))
	assert.Equal(t, UserUnmutedUnknown, other.InResultOf())
	assert.Equal(t, "Unknown", other.InResultOf().String())
}

func TestRaisedInResultOfString(t *testing.T) {
	assert.Equal(t, "AccountUserMutingAnotherUser", UserMutedAccountUserMutingAnotherUser.String())
	assert.Equal(t, "Unknown", UserMutedUnknown.String())
	assert.Equal(t, "UserMutedRaisedInResultOf(9)", UserMutedRaisedInResultOf(9).String())
}
