package events

import "fmt"

// UserMutedRaisedInResultOf explains why a mute event was delivered.
type UserMutedRaisedInResultOf int

const (
	// UserMutedAccountUserMutingAnotherUser means the subscribed account muted someone.
	UserMutedAccountUserMutingAnotherUser UserMutedRaisedInResultOf = iota

	// UserMutedUnknown is returned when the muter is not the subscribed
	// account. Mute events are only expected for the account's own actions,
	// so seeing this means the delivery rules changed; callers should handle
	// it rather than fail.
	UserMutedUnknown
)

func (r UserMutedRaisedInResultOf) String() string {
	switch r {
	case UserMutedAccountUserMutingAnotherUser:
		return "AccountUserMutingAnotherUser"
	case UserMutedUnknown:
		return "Unknown"
	}
	return fmt.Sprintf("UserMutedRaisedInResultOf(%d)", int(r))
}

// UserMutedEventArgs is passed to user-muted callbacks. It is immutable.
type UserMutedEventArgs struct {
	accountActivityEventArgs
	mutedBy    User
	mutedUser  User
	inResultOf UserMutedRaisedInResultOf
}

// NewUserMutedEventArgs builds the args from an envelope whose Source muted Target.
func NewUserMutedEventArgs(ev AccountActivityEvent[UserPair]) *UserMutedEventArgs {
	a := &UserMutedEventArgs{
		accountActivityEventArgs: newAccountActivityEventArgs(ev),
		mutedBy:                  ev.Args.Source,
		mutedUser:                ev.Args.Target,
	}
	a.inResultOf = a.resolveInResultOf()
	return a
}

// MutedBy returns the user who muted.
func (a *UserMutedEventArgs) MutedBy() User { return a.mutedBy }

// MutedUser returns the user who got muted.
func (a *UserMutedEventArgs) MutedUser() User { return a.mutedUser }

// InResultOf returns the classification computed at construction.
func (a *UserMutedEventArgs) InResultOf() UserMutedRaisedInResultOf { return a.inResultOf }

func (a *UserMutedEventArgs) resolveInResultOf() UserMutedRaisedInResultOf {
	if a.mutedBy.ID == a.accountUserID {
		return UserMutedAccountUserMutingAnotherUser
	}
	return UserMutedUnknown
}
