package events

import "fmt"

// UserUnmutedRaisedInResultOf explains why an unmute event was delivered.
type UserUnmutedRaisedInResultOf int

const (
	// UserUnmutedAccountUserUnmutingAnotherUser means the subscribed account unmuted someone.
	UserUnmutedAccountUserUnmutingAnotherUser UserUnmutedRaisedInResultOf = iota

	// UserUnmutedUnknown mirrors UserMutedUnknown.
	UserUnmutedUnknown
)

func (r UserUnmutedRaisedInResultOf) String() string {
	switch r {
	case UserUnmutedAccountUserUnmutingAnotherUser:
		return "AccountUserUnmutingAnotherUser"
	case UserUnmutedUnknown:
		return "Unknown"
	}
	return fmt.Sprintf("UserUnmutedRaisedInResultOf(%d)", int(r))
}

// UserUnmutedEventArgs is passed to user-unmuted callbacks. It is immutable.
type UserUnmutedEventArgs struct {
	accountActivityEventArgs
	unmutedBy   User
	unmutedUser User
	inResultOf  UserUnmutedRaisedInResultOf
}

// NewUserUnmutedEventArgs builds the args from an envelope whose Source unmuted Target.
func NewUserUnmutedEventArgs(ev AccountActivityEvent[UserPair]) *UserUnmutedEventArgs {
	a := &UserUnmutedEventArgs{
		accountActivityEventArgs: newAccountActivityEventArgs(ev),
		unmutedBy:                ev.Args.Source,
		unmutedUser:              ev.Args.Target,
	}
	if a.unmutedBy.ID == a.accountUserID {
		a.inResultOf = UserUnmutedAccountUserUnmutingAnotherUser
	} else {
		a.inResultOf = UserUnmutedUnknown
	}
	return a
}

// UnmutedBy returns the user who unmuted.
func (a *UserUnmutedEventArgs) UnmutedBy() User { return a.unmutedBy }

// UnmutedUser returns the user who got unmuted.
func (a *UserUnmutedEventArgs) UnmutedUser() User { return a.unmutedUser }

// InResultOf returns the classification computed at construction.
func (a *UserUnmutedEventArgs) InResultOf() UserUnmutedRaisedInResultOf { return a.inResultOf }
