package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidconnect/internal/domain"
	"aidconnect/internal/store"
)

func TestSession_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var s domain.SessionStore = store.NewSessionFileStore(home, "")

	u := &domain.User{UserID: "u-1", Email: "ann@example.com"}
	u.Profile.Name = "Ann"
	require.NoError(t, s.SaveSession(domain.SessionRecord{Token: "tok", User: u}))

	got, ok, err := s.LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, domain.UserID("u-1"), got.User.UserID)
	assert.False(t, got.SavedUTC.IsZero())
}

func TestSession_TokenUnderFixedKey(t *testing.T) {
	home := t.TempDir()
	s := store.NewSessionFileStore(home, "")
	require.NoError(t, s.SaveSession(domain.SessionRecord{Token: "abc"}))

	b, err := os.ReadFile(filepath.Join(home, "session.json"))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "abc", doc[store.TokenKey])

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSession_LoadMissing_NotFound(t *testing.T) {
	s := store.NewSessionFileStore(t.TempDir(), "")
	_, ok, err := s.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_Clear(t *testing.T) {
	s := store.NewSessionFileStore(t.TempDir(), "")
	require.NoError(t, s.SaveSession(domain.SessionRecord{Token: "abc"}))
	require.NoError(t, s.ClearSession())
	require.NoError(t, s.ClearSession(), "clearing twice is fine")

	_, ok, err := s.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_Sealed_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, store.NewSessionFileStore(home, "correct").
		SaveSession(domain.SessionRecord{Token: "secret-token"}))

	raw, err := os.ReadFile(filepath.Join(home, "session.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-token")

	got, ok, err := store.NewSessionFileStore(home, "correct").LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "secret-token", got.Token)

	_, _, err = store.NewSessionFileStore(home, "wrong").LoadSession()
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestSession_Save_LeavesNoTempFiles(t *testing.T) {
	home := t.TempDir()
	s := store.NewSessionFileStore(home, "pw")
	require.NoError(t, s.SaveSession(domain.SessionRecord{Token: "one"}))
	require.NoError(t, s.SaveSession(domain.SessionRecord{Token: "two"}))

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "session.json", entries[0].Name())
}
