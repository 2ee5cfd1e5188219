package devapi

import (
	"fmt"
	"os"
	"time"
)

// Config holds the dev server settings.
type Config struct {
	Addr      string        // listen address, e.g. ":8001"
	JWTSecret string        // HS256 signing secret
	TokenTTL  time.Duration // access token lifetime
}

// LoadConfig reads ADDR, JWT_SECRET and TOKEN_TTL with development defaults.
func LoadConfig() (Config, error) {
	cfg := Config{
		Addr:      getEnv("ADDR", ":8001"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:  30 * time.Minute,
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid duration for TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must not be empty")
	}
	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// String returns a string representation of the config (sensitive values are masked).
func (c Config) String() string {
	return fmt.Sprintf("Config{Addr: %s, TokenTTL: %s, JWTSecret: *** (masked) ***}", c.Addr, c.TokenTTL)
}
