package interfaces

import domaintypes "aidconnect/internal/domain/types"

// SessionStore persists the bearer token and cached profile between runs.
type SessionStore interface {
	SaveSession(rec domaintypes.SessionRecord) error
	// LoadSession returns ok=false when nothing has been stored yet.
	LoadSession() (rec domaintypes.SessionRecord, ok bool, err error)
	ClearSession() error
}
