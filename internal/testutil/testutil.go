package testutil

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"aidconnect/internal/devapi"
	"aidconnect/internal/domain"
)

// Secret is the signing secret used by NewDevServer.
const Secret = "test-secret"

// NewDevServer starts an in-memory backend and closes it via t.Cleanup.
func NewDevServer(t *testing.T, opts ...devapi.Option) *httptest.Server {
	t.Helper()
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	opts = append([]devapi.Option{devapi.WithLogger(quiet)}, opts...)
	srv := httptest.NewServer(devapi.New(devapi.Config{JWTSecret: Secret, TokenTTL: 30 * time.Minute}, opts...))
	t.Cleanup(srv.Close)
	return srv
}

// StaticToken is a domain.TokenSource returning a fixed token.
type StaticToken string

// Token implements domain.TokenSource.
func (s StaticToken) Token() string { return string(s) }

// SampleUser returns a registration payload for email.
func SampleUser(email string) domain.UserCreate {
	return domain.UserCreate{
		Email:    email,
		Password: "hunter22",
		Profile: domain.UserProfile{
			Name: "Test User",
			Location: domain.Location{
				Latitude:  40.7128,
				Longitude: -74.0060,
				Address:   "New York, NY",
			},
		},
	}
}

// Ctx returns a context bounded to a few seconds.
func Ctx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// GenerateJWTHS256 returns a signed token with the given subject and expiry.
func GenerateJWTHS256(t *testing.T, secret, subject string, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}
