package models

// Account event types published to the event stream.
const (
	EventAccountRegistered      = "account.registered"
	EventAccountLoggedIn        = "account.logged_in"
	EventAccountPasswordChanged = "account.password_changed"
	EventProfileUpdated         = "profile.updated"
)

// AccountEvent records something that happened to an account.
type AccountEvent struct {
	EventID   string `json:"event_id"`   // Unique identifier of the event
	Type      string `json:"type"`       // One of the Event* constants
	AccountID int64  `json:"account_id"` // Account the event belongs to
	Email     string `json:"email"`      // Account email at the time of the event
	Timestamp int64  `json:"timestamp"`  // Unix seconds
}
