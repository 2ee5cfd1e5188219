package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Flags share these names, except log_level which is
// spelled --log-level.
const (
	KeyServer     = "server"
	KeyHome       = "home"
	KeyTimeout    = "timeout"
	KeyLogLevel   = "log_level"
	KeyPassphrase = "passphrase"
)

// EnvPrefix is prepended to every key when reading the environment,
// e.g. AIDCONNECT_SERVER.
const EnvPrefix = "AIDCONNECT"

const (
	defaultServer   = "http://localhost:8001"
	defaultTimeout  = 15 * time.Second
	defaultLogLevel = "info"
	configName      = "config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Server     string        // backend base URL, e.g. http://localhost:8001
	Home       string        // config directory, e.g. $HOME/.aidconnect
	Timeout    time.Duration // per HTTP call, via http.Client.Timeout
	LogLevel   string        // logrus level name
	Passphrase string        // optional; seals the session file when set
	HTTP       *http.Client  // optional; defaults to a client with Timeout
}

// NewViper returns a viper instance with defaults, environment binding and
// the given flags bound under their own names.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyServer, defaultServer)
	v.SetDefault(KeyTimeout, defaultTimeout)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
		if f := flags.Lookup("log-level"); f != nil {
			if err := v.BindPFlag(KeyLogLevel, f); err != nil {
				return nil, fmt.Errorf("bind flags: %w", err)
			}
		}
	}
	return v, nil
}

// LoadConfig resolves Config from v, reading <home>/config.yaml when present.
func LoadConfig(v *viper.Viper) (Config, error) {
	home := v.GetString(KeyHome)
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("locate home directory: %w", err)
		}
		home = filepath.Join(userHome, ".aidconnect")
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Server:     strings.TrimRight(v.GetString(KeyServer), "/"),
		Home:       home,
		Timeout:    v.GetDuration(KeyTimeout),
		LogLevel:   v.GetString(KeyLogLevel),
		Passphrase: v.GetString(KeyPassphrase),
	}
	if cfg.Server == "" {
		return Config{}, errors.New("server URL must not be empty")
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// String returns a string representation of the config (the passphrase is masked).
func (c Config) String() string {
	pass := "unset"
	if c.Passphrase != "" {
		pass = "*** (masked) ***"
	}
	return fmt.Sprintf("Config{Server: %s, Home: %s, Timeout: %s, LogLevel: %s, Passphrase: %s}",
		c.Server, c.Home, c.Timeout, c.LogLevel, pass)
}
