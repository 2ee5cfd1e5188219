package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyServer, "", "")
	fs.String(KeyHome, "", "")
	fs.Duration(KeyTimeout, 0, "")
	fs.String("log-level", "", "")
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--home", home}))
	v, err := NewViper(fs)
	require.NoError(t, err)

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8001", cfg.Server)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Passphrase)
}

func TestLoadConfig_Precedence(t *testing.T) {
	home := t.TempDir()
	yaml := "server: http://from-file:1\ntimeout: 3s\npassphrase: from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("AIDCONNECT_HOME", home)
	t.Setenv("AIDCONNECT_TIMEOUT", "7s")
	t.Setenv("AIDCONNECT_LOG_LEVEL", "debug")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--server", "http://from-flag:2/"}))
	v, err := NewViper(fs)
	require.NoError(t, err)

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag:2", cfg.Server, "flag beats file, trailing slash dropped")
	assert.Equal(t, 7*time.Second, cfg.Timeout, "env beats file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "from-file", cfg.Passphrase)
	assert.NotContains(t, cfg.String(), "from-file")
}

func TestLoadConfig_LogLevelFlag(t *testing.T) {
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--home", t.TempDir(), "--log-level", "error"}))
	v, err := NewViper(fs)
	require.NoError(t, err)
	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfig_BadTimeout(t *testing.T) {
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--home", t.TempDir(), "--timeout=-1s"}))
	v, err := NewViper(fs)
	require.NoError(t, err)
	_, err = LoadConfig(v)
	assert.Error(t, err)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("server: [unclosed"), 0o600))
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--home", home}))
	v, err := NewViper(fs)
	require.NoError(t, err)
	_, err = LoadConfig(v)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug", os.Stderr)
	require.NoError(t, err)
	assert.Equal(t, "debug", l.GetLevel().String())

	_, err = NewLogger("chatty", os.Stderr)
	assert.Error(t, err)
}
