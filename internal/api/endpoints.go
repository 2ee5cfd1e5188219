package api

import (
	"context"
	"net/url"
	"strconv"

	"aidconnect/internal/domain"
)

// Login exchanges credentials for a bearer token.
func (c *HTTP) Login(ctx context.Context, in domain.UserLogin) (domain.Token, error) {
	var out domain.Token
	if err := c.post(ctx, "/auth/login", in, &out); err != nil {
		return domain.Token{}, err
	}
	return out, nil
}

// Register creates an account and returns its first bearer token.
func (c *HTTP) Register(ctx context.Context, in domain.UserCreate) (domain.Token, error) {
	var out domain.Token
	if err := c.post(ctx, "/auth/register", in, &out); err != nil {
		return domain.Token{}, err
	}
	return out, nil
}

// Me returns the account the current token belongs to.
func (c *HTTP) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	if err := c.getJSON(ctx, "/auth/me", nil, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

// ListRequests fetches requests matching f.
func (c *HTTP) ListRequests(ctx context.Context, f domain.RequestFilter) ([]domain.HelpRequest, error) {
	q := url.Values{}
	setString(q, "category", string(f.Category))
	setString(q, "status", string(f.Status))
	setGeo(q, f.Latitude, f.Longitude, f.Radius)
	setInt(q, "limit", f.Limit)

	var out []domain.HelpRequest
	if err := c.getJSON(ctx, "/requests", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRequest fetches a single request by id.
func (c *HTTP) GetRequest(ctx context.Context, id string) (domain.HelpRequest, error) {
	var out domain.HelpRequest
	if err := c.getJSON(ctx, "/requests/"+url.PathEscape(id), nil, &out); err != nil {
		return domain.HelpRequest{}, err
	}
	return out, nil
}

// CreateRequest posts a new help request.
func (c *HTTP) CreateRequest(ctx context.Context, in domain.HelpRequestCreate) (domain.HelpRequest, error) {
	var out domain.HelpRequest
	if err := c.post(ctx, "/requests", in, &out); err != nil {
		return domain.HelpRequest{}, err
	}
	return out, nil
}

// ListOffers fetches offers matching f.
func (c *HTTP) ListOffers(ctx context.Context, f domain.OfferFilter) ([]domain.HelpOffer, error) {
	q := url.Values{}
	setString(q, "category", string(f.Category))
	setGeo(q, f.Latitude, f.Longitude, f.Radius)
	setInt(q, "limit", f.Limit)

	var out []domain.HelpOffer
	if err := c.getJSON(ctx, "/offers", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOffer posts a new help offer.
func (c *HTTP) CreateOffer(ctx context.Context, in domain.HelpOfferCreate) (domain.HelpOffer, error) {
	var out domain.HelpOffer
	if err := c.post(ctx, "/offers", in, &out); err != nil {
		return domain.HelpOffer{}, err
	}
	return out, nil
}

// Health asks the backend whether it is up.
func (c *HTTP) Health(ctx context.Context) (domain.Health, error) {
	var out domain.Health
	if err := c.getJSON(ctx, "/health", nil, &out); err != nil {
		return domain.Health{}, err
	}
	return out, nil
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

// setGeo only sends coordinates as a pair.
func setGeo(q url.Values, lat, lng *float64, radius int) {
	if lat == nil || lng == nil {
		return
	}
	q.Set("latitude", strconv.FormatFloat(*lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(*lng, 'f', -1, 64))
	setInt(q, "radius", radius)
}
