package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"aidconnect/internal/domain"
)

const sessionFilename = "session.json"

// Fixed storage keys inside the session document.
const (
	TokenKey   = "aidconnect_token"
	UserKey    = "aidconnect_user"
	SavedAtKey = "aidconnect_saved_at"
)

// SessionFileStore persists the bearer token and cached profile to disk.
type SessionFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir. A non-empty
// passphrase seals the document at rest.
func NewSessionFileStore(dir, passphrase string) *SessionFileStore {
	return &SessionFileStore{dir: dir, passphrase: passphrase}
}

// Path returns the location of the session document.
func (s *SessionFileStore) Path() string {
	return filepath.Join(s.dir, sessionFilename)
}

// SaveSession writes rec under the fixed storage keys.
func (s *SessionFileStore) SaveSession(rec domain.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDoc()
	if err != nil {
		return err
	}
	if err := putKey(doc, TokenKey, rec.Token); err != nil {
		return err
	}
	if rec.User != nil {
		if err := putKey(doc, UserKey, rec.User); err != nil {
			return err
		}
	} else {
		delete(doc, UserKey)
	}
	saved := rec.SavedUTC
	if saved.IsZero() {
		saved = time.Now().UTC()
	}
	if err := putKey(doc, SavedAtKey, saved); err != nil {
		return err
	}
	return s.writeDoc(doc)
}

// LoadSession returns the stored record and whether a token was present.
func (s *SessionFileStore) LoadSession() (domain.SessionRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDoc()
	if err != nil {
		return domain.SessionRecord{}, false, err
	}
	var rec domain.SessionRecord
	if raw, ok := doc[TokenKey]; ok {
		if err := json.Unmarshal(raw, &rec.Token); err != nil {
			return domain.SessionRecord{}, false, fmt.Errorf("decode %s: %w", TokenKey, err)
		}
	}
	if rec.Token == "" {
		return domain.SessionRecord{}, false, nil
	}
	if raw, ok := doc[UserKey]; ok {
		var u domain.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return domain.SessionRecord{}, false, fmt.Errorf("decode %s: %w", UserKey, err)
		}
		rec.User = &u
	}
	if raw, ok := doc[SavedAtKey]; ok {
		_ = json.Unmarshal(raw, &rec.SavedUTC)
	}
	return rec, true, nil
}

// ClearSession removes the session document from disk.
func (s *SessionFileStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return discardFile(s.Path())
}

func (s *SessionFileStore) readDoc() (map[string]json.RawMessage, error) {
	doc := map[string]json.RawMessage{}
	b, err := loadFile(s.Path())
	if err != nil || b == nil {
		return doc, err
	}
	if s.passphrase != "" {
		if b, err = openDocument(s.passphrase, b); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return doc, nil
}

func (s *SessionFileStore) writeDoc(doc map[string]json.RawMessage) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		if b, err = sealDocument(s.passphrase, b, defaultKDF); err != nil {
			return err
		}
	}
	return replaceFile(s.Path(), b, 0o600)
}

func putKey(doc map[string]json.RawMessage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	doc[key] = raw
	return nil
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
