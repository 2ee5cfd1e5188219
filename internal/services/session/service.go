package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"aidconnect/internal/api"
	"aidconnect/internal/domain"
)

var (
	// ErrNotAuthenticated is returned when an operation needs a logged-in user.
	ErrNotAuthenticated = errors.New("not logged in; run `aidconnect login` first")
	// ErrTokenExpired is returned when the stored token is past its expiry or
	// the backend no longer accepts it. The session is cleared first.
	ErrTokenExpired = errors.New("session expired; please log in again")
)

// Service holds the bearer token and profile of the current user.
//
// It is safe for concurrent use; the api client reads Token() while a
// login is in flight.
type Service struct {
	auth  domain.AuthAPI
	store domain.SessionStore
	log   logrus.FieldLogger
	now   func() time.Time

	mu    sync.RWMutex
	token string
	user  *domain.User
}

// New returns a session service that authenticates via auth and persists to store.
func New(auth domain.AuthAPI, store domain.SessionStore, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{auth: auth, store: store, log: log, now: time.Now}
}

// Token returns the current bearer token, or "" when logged out.
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Current returns the logged-in user.
func (s *Service) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a token and profile are held.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// RequireUser returns the current user or ErrNotAuthenticated.
func (s *Service) RequireUser() (domain.User, error) {
	u, ok := s.Current()
	if !ok {
		return domain.User{}, ErrNotAuthenticated
	}
	return u, nil
}

// Register creates an account, then logs in with the token it returns.
func (s *Service) Register(ctx context.Context, in domain.UserCreate) (domain.User, error) {
	tok, err := s.auth.Register(ctx, in)
	if err != nil {
		return domain.User{}, err
	}
	return s.adopt(ctx, tok.AccessToken)
}

// Login exchanges credentials for a token and fetches the profile.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	tok, err := s.auth.Login(ctx, domain.UserLogin{Email: email, Password: password})
	if err != nil {
		return domain.User{}, err
	}
	return s.adopt(ctx, tok.AccessToken)
}

// Logout drops the in-memory session and the persisted record.
func (s *Service) Logout() error {
	s.set("", nil)
	return s.store.ClearSession()
}

// Expire is Logout for a token the backend rejected; it always yields
// ErrTokenExpired unless clearing the store fails.
func (s *Service) Expire() error {
	if err := s.Logout(); err != nil {
		return err
	}
	return ErrTokenExpired
}

// Restore loads the persisted session.
//
// A token whose exp claim has passed is dropped without a network call.
// Otherwise the profile is refreshed via /auth/me; a 401 drops the session,
// while a transport failure keeps the cached profile.
func (s *Service) Restore(ctx context.Context) (domain.User, bool, error) {
	rec, ok, err := s.store.LoadSession()
	if err != nil {
		return domain.User{}, false, fmt.Errorf("load session: %w", err)
	}
	if !ok || rec.Token == "" {
		return domain.User{}, false, nil
	}
	if expired(rec.Token, s.now()) {
		return domain.User{}, false, s.Expire()
	}

	s.set(rec.Token, rec.User)
	u, err := s.auth.Me(ctx)
	switch {
	case err == nil:
	case api.IsUnauthorized(err):
		return domain.User{}, false, s.Expire()
	case rec.User != nil && api.StatusOf(err) == 0:
		s.log.WithError(err).Warn("could not refresh profile, using cached copy")
		return *rec.User, true, nil
	default:
		s.set("", nil)
		return domain.User{}, false, fmt.Errorf("refresh profile: %w", err)
	}
	if err := s.persist(rec.Token, u); err != nil {
		return domain.User{}, false, err
	}
	return u, true, nil
}

func (s *Service) adopt(ctx context.Context, token string) (domain.User, error) {
	s.set(token, nil)
	u, err := s.auth.Me(ctx)
	if err != nil {
		s.set("", nil)
		return domain.User{}, fmt.Errorf("fetch profile: %w", err)
	}
	if err := s.persist(token, u); err != nil {
		return domain.User{}, err
	}
	s.log.WithField("user_id", u.UserID).Debug("session established")
	return u, nil
}

func (s *Service) persist(token string, u domain.User) error {
	s.set(token, &u)
	rec := domain.SessionRecord{Token: token, User: &u, SavedUTC: s.now().UTC()}
	if err := s.store.SaveSession(rec); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Service) set(token string, u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = u
}

// expired decodes the exp claim without verifying the signature; the
// backend is the one that verifies. Unparseable tokens count as expired.
func expired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
