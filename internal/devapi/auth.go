package devapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"aidconnect/internal/domain"
)

var errInvalidToken = errors.New("Invalid token")

type userKey struct{}

func withUser(ctx context.Context, u *account) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func userFrom(ctx context.Context) *account {
	u, _ := ctx.Value(userKey{}).(*account)
	return u
}

func hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// issueToken signs an HS256 token for id.
func (s *Server) issueToken(id domain.UserID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   id.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

// parseToken validates tokenStr and returns the user id in "sub".
func (s *Server) parseToken(tokenStr string) (domain.UserID, error) {
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tok.Valid || claims.Subject == "" {
		return "", errInvalidToken
	}
	return domain.UserID(claims.Subject), nil
}

// requireUser resolves the bearer token into an account or answers 401/403.
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		parts := strings.SplitN(h, " ", 2)
		if h == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeDetail(w, http.StatusForbidden, "Not authenticated")
			return
		}
		id, err := s.parseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, err.Error())
			return
		}
		u, ok := s.mem.userByID(id)
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "User not found")
			return
		}
		next(w, r.WithContext(withUser(r.Context(), &u)))
	}
}

func defaultNow() time.Time { return time.Now().UTC() }
