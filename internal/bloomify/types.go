package bloomify

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthorized matches any 401 response.
var ErrUnauthorized = errors.New("unauthorized")

// APIError describes a non-2xx response.
type APIError struct {
	Status  int
	Path    string
	Message string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Status, msg)
}

// Is makes a 401 APIError match ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// Session is one device signed in to the account.
type Session struct {
	ID         string `json:"id"`
	Device     string `json:"device"`
	IP         string `json:"ip"`
	Location   string `json:"location"`
	LastActive string `json:"last_active"`
	Current    bool   `json:"current"`
}

// ParsedLastActive returns LastActive as time.Time, or the zero time.
func (s Session) ParsedLastActive() time.Time {
	return parseTime(s.LastActive)
}

// Label is the device name, falling back to the id.
func (s Session) Label() string {
	if d := strings.TrimSpace(s.Device); d != "" {
		return d
	}
	return s.ID
}

type sessionListResponse struct {
	Sessions []Session `json:"sessions"`
}

// TokenPair is the result of a token refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
