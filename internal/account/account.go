// Package account performs the side effects behind the settings rows:
// syncing the profile, token refresh, session revocation, picture upload,
// sign out and cache maintenance. Results land in the shared state.Store.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/bloomify/sprig/internal/bloomify"
	"github.com/bloomify/sprig/internal/cache"
	"github.com/bloomify/sprig/internal/config"
	"github.com/bloomify/sprig/internal/logging"
	"github.com/bloomify/sprig/internal/profile"
	"github.com/bloomify/sprig/internal/session"
	"github.com/bloomify/sprig/internal/state"
)

// ErrThrottled is returned when a manual action is repeated too quickly.
var ErrThrottled = errors.New("action throttled")

// ErrSignedOut is returned by actions that need a token when there is none.
var ErrSignedOut = errors.New("not signed in")

const (
	profileCacheKey = "profile"
	// DefaultManualEvery is the minimum spacing of user-triggered refreshes.
	DefaultManualEvery = 3 * time.Second
)

// API is the subset of the Bloomify client the service drives.
type API interface {
	bloomify.AccountFetcher
	RevokeSession(ctx context.Context, id string) error
	RefreshToken(ctx context.Context, refresh string) (bloomify.TokenPair, error)
	UploadProfilePicture(ctx context.Context, path string) (string, error)
	SetToken(token string)
}

// Options configure a Service.
type Options struct {
	API         API
	Store       *state.Store
	Cache       *cache.Cache
	TokenPath   string
	Logger      *zap.Logger
	ManualEvery time.Duration
}

// Service coordinates the API client, token file, cache and store.
type Service struct {
	api       API
	store     *state.Store
	cache     *cache.Cache
	tokenPath string
	logger    *zap.Logger
	limiter   *rate.Limiter

	mu     sync.Mutex
	tokens session.Tokens
	// gen changes on sign out; results fetched under an older gen are dropped.
	gen uint64
}

// New builds a Service and loads the token file. A missing token leaves
// the service signed out.
func New(opts Options) *Service {
	every := opts.ManualEvery
	if every <= 0 {
		every = DefaultManualEvery
	}
	s := &Service{
		api:       opts.API,
		store:     opts.Store,
		cache:     opts.Cache,
		tokenPath: opts.TokenPath,
		logger:    logging.OrNop(opts.Logger),
		limiter:   rate.NewLimiter(rate.Every(every), 1),
	}
	if s.store == nil {
		s.store = &state.Store{}
	}

	tokens, err := session.Load(opts.TokenPath)
	switch {
	case err == nil:
		s.tokens = tokens
		s.api.SetToken(tokens.AccessToken)
	case errors.Is(err, session.ErrNoToken):
		s.logger.Info("no access token; running signed out")
	default:
		s.logger.Warn("load tokens", zap.Error(err))
	}
	return s
}

// Store returns the store the service writes to.
func (s *Service) Store() *state.Store {
	return s.store
}

// SignedIn reports whether an access token is held.
func (s *Service) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.Valid()
}

// TokenInfo returns the claims of the access token, or nil when signed out
// or the token cannot be decoded.
func (s *Service) TokenInfo() *session.Info {
	s.mu.Lock()
	raw := s.tokens.AccessToken
	s.mu.Unlock()
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	info, err := session.Inspect(raw)
	if err != nil {
		s.logger.Debug("inspect token", zap.Error(err))
		return nil
	}
	return &info
}

// RestoreCached seeds the store with the last profile written to the
// cache so the screen has something to show before the first fetch.
func (s *Service) RestoreCached() bool {
	if s.cache == nil || !s.SignedIn() {
		return false
	}
	data, ok, err := s.cache.Get(profileCacheKey)
	if err != nil || !ok {
		return false
	}
	var u profile.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.logger.Warn("decode cached profile", zap.Error(err))
		return false
	}
	s.store.UpdateProfile(&u, nil)
	return true
}

// Sync fetches the profile and session list into the store. Signed-out
// services do nothing. A sign out during the fetch discards the result and
// returns ErrSignedOut.
func (s *Service) Sync(ctx context.Context) error {
	gen, ok := s.generation()
	if !ok {
		return nil
	}
	u, err := s.api.FetchProfile(ctx)
	if !s.commit(gen, func() {
		s.store.UpdateProfile(u, err)
		if err == nil {
			s.cacheProfile(u)
		}
	}) {
		return ErrSignedOut
	}
	if err != nil {
		if errors.Is(err, bloomify.ErrUnauthorized) {
			s.logger.Warn("access token rejected", zap.Error(err))
		}
		return fmt.Errorf("fetch profile: %w", err)
	}

	sessions, err := s.api.FetchSessions(ctx)
	if !s.commit(gen, func() { s.store.UpdateSessions(sessions, err) }) {
		return ErrSignedOut
	}
	if err != nil {
		return fmt.Errorf("fetch sessions: %w", err)
	}
	return nil
}

// Refresh is a user-triggered Sync, limited to one per ManualEvery.
func (s *Service) Refresh(ctx context.Context) error {
	if !s.limiter.Allow() {
		return ErrThrottled
	}
	return s.Sync(ctx)
}

// RefreshToken exchanges the refresh token and persists the new pair.
func (s *Service) RefreshToken(ctx context.Context) error {
	s.mu.Lock()
	refresh := s.tokens.RefreshToken
	s.mu.Unlock()
	if strings.TrimSpace(refresh) == "" {
		return ErrSignedOut
	}
	if !s.limiter.Allow() {
		return ErrThrottled
	}
	pair, err := s.api.RefreshToken(ctx, refresh)
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	tokens := session.Tokens{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
	if err := session.Save(s.tokenPath, tokens); err != nil {
		return err
	}
	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()
	s.logger.Info("access token refreshed")
	return nil
}

// RevokeSession signs out another device.
func (s *Service) RevokeSession(ctx context.Context, id string) error {
	if !s.SignedIn() {
		return ErrSignedOut
	}
	if err := s.api.RevokeSession(ctx, id); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.store.RemoveSession(id)
	s.logger.Info("session revoked", zap.String("session", id))
	return nil
}

// UploadPicture uploads the image at path, which may start with ~, and
// patches the stored profile.
func (s *Service) UploadPicture(ctx context.Context, path string) (string, error) {
	gen, ok := s.generation()
	if !ok {
		return "", ErrSignedOut
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("picture path: %w", err)
	}
	url, err := s.api.UploadProfilePicture(ctx, resolved)
	if err != nil {
		return "", err
	}
	if !s.commit(gen, func() {
		s.store.SetProfilePicture(url)
		if snap := s.store.Snapshot(); snap.Profile != nil {
			s.cacheProfile(snap.Profile)
		}
	}) {
		return "", ErrSignedOut
	}
	return url, nil
}

// SignOut removes the token file, forgets account data and clears the
// cached profile.
func (s *Service) SignOut() error {
	if err := session.Clear(s.tokenPath); err != nil {
		return err
	}
	s.mu.Lock()
	s.tokens = session.Tokens{}
	s.gen++
	s.mu.Unlock()
	s.api.SetToken("")
	s.store.Reset()
	if s.cache != nil {
		if _, err := s.cache.Clear(); err != nil {
			s.logger.Warn("clear cache on sign out", zap.Error(err))
		}
	}
	s.logger.Info("signed out")
	return nil
}

// CacheSize reports the bytes held by the cache. Errors read as zero.
func (s *Service) CacheSize() int64 {
	if s.cache == nil {
		return 0
	}
	n, err := s.cache.Size()
	if err != nil {
		s.logger.Debug("cache size", zap.Error(err))
		return 0
	}
	return n
}

// ClearCache empties the cache and returns the bytes freed.
func (s *Service) ClearCache() (int64, error) {
	if s.cache == nil {
		return 0, nil
	}
	freed, err := s.cache.Clear()
	if err != nil {
		return 0, err
	}
	s.logger.Info("cache cleared", zap.Int64("bytes", freed))
	return freed, nil
}

// generation returns the current sign-in generation and whether a token
// is held.
func (s *Service) generation() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen, s.tokens.Valid()
}

// commit runs apply while holding the lock, unless a sign out happened
// since gen was read. It reports whether apply ran.
func (s *Service) commit(gen uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || !s.tokens.Valid() {
		return false
	}
	apply()
	return true
}

func (s *Service) cacheProfile(u *profile.User) {
	if s.cache == nil || u == nil {
		return
	}
	data, err := json.Marshal(u)
	if err != nil {
		s.logger.Warn("encode profile for cache", zap.Error(err))
		return
	}
	if err := s.cache.Put(profileCacheKey, data); err != nil {
		s.logger.Warn("cache profile", zap.Error(err))
	}
}
