package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"aidconnect/internal/domain"
)

const apiPrefix = "/api"

// maxErrorBody bounds how much of an error response we read.
const maxErrorBody = 64 << 10

// HTTP talks JSON to the Aid-Connect backend.
type HTTP struct {
	Base   string
	HTTP   *http.Client
	Tokens domain.TokenSource
	Log    logrus.FieldLogger
}

// NewHTTP returns a client for base. A nil httpClient means http.DefaultClient.
func NewHTTP(base string, httpClient *http.Client, tokens domain.TokenSource) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTP{
		Base:   strings.TrimRight(base, "/"),
		HTTP:   httpClient,
		Tokens: tokens,
		Log:    logrus.StandardLogger(),
	}
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, buf, out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, q, nil, out)
}

func (c *HTTP) do(ctx context.Context, method, path string, q url.Values, body io.Reader, out any) error {
	u := c.Base + apiPrefix + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Tokens != nil {
		if tok := c.Tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logger().WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("api call")

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{
			Method:  method,
			Path:    apiPrefix + path,
			Status:  resp.StatusCode,
			Message: messageFrom(resp.StatusCode, b),
		}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTP) logger() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

var _ domain.APIClient = (*HTTP)(nil)
