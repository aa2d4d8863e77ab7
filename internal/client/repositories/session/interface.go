package session

import "context"

// State is the persisted device session: a logged-in flag plus the id of
// the authenticated user. Token holds the last bearer token issued by the
// identity endpoint, empty for offline-only logins.
type State struct {
	LoggedIn bool
	UserID   int64
	Token    string
}

// Repository persists the single device session across process restarts.
type Repository interface {
	// SetLoggedIn marks the session authenticated for the given user.
	// A second login overwrites the previous session.
	SetLoggedIn(ctx context.Context, userID int64, token string) error

	// Current returns the persisted session state. A never-written store
	// reads as a logged-out state, not an error.
	Current(ctx context.Context) (*State, error)

	// Clear unconditionally resets the session to logged out.
	Clear(ctx context.Context) error
}
