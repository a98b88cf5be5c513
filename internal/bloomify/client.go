package bloomify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bloomify/sprig/internal/profile"
)

// AccountFetcher is the read side of the API the poller depends on.
type AccountFetcher interface {
	FetchProfile(ctx context.Context) (*profile.User, error)
	FetchSessions(ctx context.Context) ([]Session, error)
}

// Ensure Client implements AccountFetcher at compile time.
var _ AccountFetcher = (*Client)(nil)

// Client talks to the Bloomify HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	upload    *http.Client
	userAgent string
	deviceID  string
	stager    Stager
	logger    *zap.Logger

	mu    sync.RWMutex
	token string
}

const (
	defaultAPIURL    = "https://api.bloomify.app"
	defaultUserAgent = "sprig/dev"
	deviceName       = "sprig"
	requestTimeout   = 10 * time.Second
	uploadTimeout    = time.Minute
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDeviceID sets the X-Device-ID header value.
func WithDeviceID(id string) Option {
	return func(c *Client) { c.deviceID = strings.TrimSpace(id) }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithStager sets where uploads are staged before sending.
func WithStager(s Stager) Option {
	return func(c *Client) {
		if s != nil {
			c.stager = s
		}
	}
}

// WithToken sets the initial access token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

// NewClient builds a Client for the API rooted at apiURL.
func NewClient(apiURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		upload:    &http.Client{Timeout: uploadTimeout},
		userAgent: defaultUserAgent,
		stager:    tempStager{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetToken replaces the bearer token sent with each request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = strings.TrimSpace(token)
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// FetchProfile retrieves the signed-in user. The record may arrive bare or
// wrapped as {"user": ...} or {"data": {"user": ...}}.
func (c *Client) FetchProfile(ctx context.Context) (*profile.User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

// FetchSessions lists the account's signed-in devices.
func (c *Client) FetchSessions(ctx context.Context) ([]Session, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload sessionListResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/sessions", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Sessions, nil
}

// RevokeSession signs the given session out.
func (c *Client) RevokeSession(ctx context.Context, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("session id required")
	}
	return c.do(ctx, http.MethodDelete, "/api/users/sessions/"+url.PathEscape(id), nil, nil)
}

// RefreshToken exchanges refresh for a new token pair and starts using the
// new access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (TokenPair, error) {
	if c == nil {
		return TokenPair{}, fmt.Errorf("client is nil")
	}
	refresh = strings.TrimSpace(refresh)
	if refresh == "" {
		return TokenPair{}, fmt.Errorf("refresh token required")
	}
	body, err := json.Marshal(refreshRequest{RefreshToken: refresh})
	if err != nil {
		return TokenPair{}, fmt.Errorf("encode refresh request: %w", err)
	}
	var pair TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", jsonBody(body), &pair); err != nil {
		return TokenPair{}, err
	}
	if strings.TrimSpace(pair.AccessToken) == "" {
		return TokenPair{}, fmt.Errorf("refresh response missing access_token")
	}
	if pair.RefreshToken == "" {
		pair.RefreshToken = refresh
	}
	c.SetToken(pair.AccessToken)
	return pair, nil
}

type requestBody struct {
	reader      io.Reader
	contentType string
}

func jsonBody(b []byte) *requestBody {
	return &requestBody{reader: bytes.NewReader(b), contentType: "application/json"}
}

func (c *Client) do(ctx context.Context, method, path string, body *requestBody, dest any) error {
	return c.doWith(ctx, c.http, method, path, body, dest)
}

func (c *Client) doWith(ctx context.Context, hc *http.Client, method, path string, body *requestBody, dest any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		reader = body.reader
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Device-Name", deviceName)
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}
	if body != nil && body.contentType != "" {
		req.Header.Set("Content-Type", body.contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		c.logger.Debug("api request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return newAPIError(resp, path)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode response: empty body")
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newAPIError(resp *http.Response, path string) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Path: path}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var body errorBody
	if json.Unmarshal(data, &body) == nil {
		apiErr.Message = body.Error
		if apiErr.Message == "" {
			apiErr.Message = body.Message
		}
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(data))
	return apiErr
}

func decodeUser(raw json.RawMessage) (*profile.User, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	body := []byte(raw)
	switch {
	case present(envelope.Data):
		body = envelope.Data
		var inner struct {
			User json.RawMessage `json:"user"`
		}
		if json.Unmarshal(envelope.Data, &inner) == nil && present(inner.User) {
			body = inner.User
		}
	case present(envelope.User):
		body = envelope.User
	}
	var u profile.User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &u, nil
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", apiURL)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
