package devapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidconnect/internal/devapi"
	"aidconnect/internal/domain"
	"aidconnect/internal/testutil"
)

func call(t *testing.T, srv *httptest.Server, method, path, token string, in any, out any) int {
	t.Helper()
	var body bytes.Buffer
	if in != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(in))
	}
	req, err := http.NewRequest(method, srv.URL+path, &body)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func register(t *testing.T, srv *httptest.Server, email string) domain.Token {
	t.Helper()
	var tok domain.Token
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/auth/register", "", testutil.SampleUser(email), &tok))
	require.NotEmpty(t, tok.AccessToken)
	return tok
}

func TestRegisterLoginMe(t *testing.T) {
	srv := testutil.NewDevServer(t)
	tok := register(t, srv, "ann@example.com")
	assert.Equal(t, "bearer", tok.TokenType)

	var detail map[string]string
	status := call(t, srv, http.MethodPost, "/api/auth/register", "", testutil.SampleUser("ANN@example.com"), &detail)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email already registered", detail["detail"])

	status = call(t, srv, http.MethodPost, "/api/auth/login", "", domain.UserLogin{Email: "ann@example.com", Password: "nope"}, &detail)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", detail["detail"])

	var login domain.Token
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/auth/login", "", domain.UserLogin{Email: "ann@example.com", Password: "hunter22"}, &login))
	assert.Equal(t, tok.UserID, login.UserID)

	var me domain.User
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/auth/me", login.AccessToken, nil, &me))
	assert.Equal(t, tok.UserID, me.UserID)
	assert.Equal(t, 5.0, me.Stats.CommunityRating)
	require.NotNil(t, me.Profile.Location.FuzzyRadius)
	assert.Equal(t, 100, *me.Profile.Location.FuzzyRadius)
}

func TestMe_RequiresBearer(t *testing.T) {
	srv := testutil.NewDevServer(t)
	assert.Equal(t, http.StatusForbidden, call(t, srv, http.MethodGet, "/api/auth/me", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, srv, http.MethodGet, "/api/auth/me", "garbage", nil, nil))
}

func TestExpiredToken_Rejected(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	srv := testutil.NewDevServer(t, devapi.WithClock(clock))
	tok := register(t, srv, "old@example.com")

	now = now.Add(31 * time.Minute)
	var detail map[string]string
	assert.Equal(t, http.StatusUnauthorized, call(t, srv, http.MethodGet, "/api/auth/me", tok.AccessToken, nil, &detail))
	assert.Equal(t, "Invalid token", detail["detail"])
}

func TestRequests_CreateListGet(t *testing.T) {
	srv := testutil.NewDevServer(t)
	tok := register(t, srv, "req@example.com").AccessToken

	in := domain.HelpRequestCreate{
		Title:       "Need groceries",
		Description: "Cannot leave home this week",
		Timeframe:   domain.TimeframeThisWeek,
		Location:    domain.Location{Latitude: 40.71, Longitude: -74.0, Address: "NYC"},
	}
	var created domain.HelpRequest
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/requests", tok, in, &created))
	assert.Equal(t, domain.CategoryOther, created.Category)
	assert.Equal(t, 3.0, created.UrgencyScore)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.Equal(t, domain.RequestOpen, created.Status)
	assert.Equal(t, domain.TimeframeThisWeek, created.Timeframe)
	require.NotNil(t, created.ExpiresAt)
	assert.Empty(t, created.Matching.AIMatches)

	var got domain.HelpRequest
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/requests/"+created.RequestID, tok, nil, &got))
	assert.Equal(t, created.RequestID, got.RequestID)

	var detail map[string]string
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, "/api/requests/missing", tok, nil, &detail))
	assert.Equal(t, "Request not found", detail["detail"])

	var near, far []domain.HelpRequest
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/requests?latitude=40.7&longitude=-74.0&radius=5000", tok, nil, &near))
	assert.Len(t, near, 1)
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/requests?latitude=51.5&longitude=-0.12", tok, nil, &far))
	assert.Empty(t, far)

	var fulfilled []domain.HelpRequest
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/requests?status=fulfilled", tok, nil, &fulfilled))
	assert.Empty(t, fulfilled)
}

func TestRequests_MissingFields(t *testing.T) {
	srv := testutil.NewDevServer(t)
	tok := register(t, srv, "bad@example.com").AccessToken

	var body struct {
		Detail []struct {
			Loc []string `json:"loc"`
			Msg string   `json:"msg"`
		} `json:"detail"`
	}
	status := call(t, srv, http.MethodPost, "/api/requests", tok, domain.HelpRequestCreate{Description: "x", Location: domain.Location{Address: "a"}}, &body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.Len(t, body.Detail, 1)
	assert.Equal(t, []string{"body", "title"}, body.Detail[0].Loc)
}

func TestOffers_CreateListFilter(t *testing.T) {
	srv := testutil.NewDevServer(t)
	tok := register(t, srv, "helper@example.com").AccessToken

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, c := range []domain.Category{domain.CategoryFood, domain.CategoryTransport} {
		in := domain.HelpOfferCreate{
			Title:        "Help with " + string(c),
			Description:  "Happy to help",
			Category:     c,
			Availability: domain.OfferAvailability{StartTime: start, EndTime: start.Add(4 * time.Hour)},
			Location:     domain.Location{Latitude: 1, Longitude: 2, Address: "Somewhere"},
		}
		var o domain.HelpOffer
		require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/offers", tok, in, &o))
		assert.Equal(t, 1, o.Capacity)
		assert.Equal(t, 5000, o.MaxDistance)
		assert.Equal(t, domain.OfferActive, o.Status)
	}

	var all, food []domain.HelpOffer
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/offers", tok, nil, &all))
	assert.Len(t, all, 2)
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/offers?category=food", tok, nil, &food))
	require.Len(t, food, 1)
	assert.Equal(t, domain.CategoryFood, food[0].Category)
}

func TestHealth(t *testing.T) {
	srv := testutil.NewDevServer(t)
	var h domain.Health
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/health", "", nil, &h))
	assert.Equal(t, "healthy", h.Status)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("TOKEN_TTL", "5m")
	cfg, err := devapi.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Contains(t, cfg.String(), "masked")

	t.Setenv("TOKEN_TTL", "soon")
	_, err = devapi.LoadConfig()
	assert.Error(t, err)
}
