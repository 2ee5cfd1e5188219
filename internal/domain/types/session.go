package types

import "time"

// SessionRecord is what the client keeps between runs: the bearer token
// and the last profile fetched with it.
type SessionRecord struct {
	Token    string    `json:"token"`
	User     *User     `json:"user,omitempty"`
	SavedUTC time.Time `json:"saved_utc"`
}
