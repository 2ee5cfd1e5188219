package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the backend.
type Error struct {
	Method  string
	Path    string
	Status  int
	Message string
}

// Error returns the user-visible message.
func (e *Error) Error() string {
	return e.Message
}

// Detail returns a diagnostic form including method, path and status.
func (e *Error) Detail() string {
	return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, http.StatusText(e.Status), e.Message)
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// errorBody covers both {"detail": "..."} and the validation form
// {"detail": [{"loc": [...], "msg": "..."}]}, plus {"error": "..."}.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// messageFrom extracts a single user-visible message from an error body.
func messageFrom(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if len(eb.Detail) > 0 {
			var s string
			if json.Unmarshal(eb.Detail, &s) == nil && s != "" {
				return s
			}
			var items []validationItem
			if json.Unmarshal(eb.Detail, &items) == nil && len(items) > 0 && items[0].Msg != "" {
				return fieldMessage(items[0])
			}
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	if text := strings.TrimSpace(http.StatusText(status)); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", status)
}

func fieldMessage(it validationItem) string {
	var parts []string
	for _, l := range it.Loc {
		if s, ok := l.(string); ok && s != "body" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return it.Msg
	}
	return strings.Join(parts, ".") + ": " + it.Msg
}
