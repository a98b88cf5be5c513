package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bloomify/sprig/internal/account"
	"github.com/bloomify/sprig/internal/bloomify"
	"github.com/bloomify/sprig/internal/cache"
	"github.com/bloomify/sprig/internal/config"
	"github.com/bloomify/sprig/internal/logging"
	"github.com/bloomify/sprig/internal/prefs"
	"github.com/bloomify/sprig/internal/profile"
	"github.com/bloomify/sprig/internal/state"
	"github.com/bloomify/sprig/internal/ui"
)

// Options configure the sprig application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/sprig/prefs.toml
	PollEvery  int    // seconds; zero uses default
	Version    string
}

// Env is the wired dependency graph shared by the TUI and the
// non-interactive subcommands.
type Env struct {
	Config  config.Config
	Prefs   prefs.Prefs
	Logger  *zap.Logger
	Cache   *cache.Cache
	Client  *bloomify.Client
	Account *account.Service
}

// Setup loads configuration and preferences and builds the account service.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogDir, cfg.Debug)
	if err != nil {
		// The TUI owns the terminal, so a broken log dir only costs logs.
		logger = logging.Nop()
	}

	userPrefs, dirty := prefs.Load(opts.PrefsPath)
	if dirty {
		if err := prefs.Save(opts.PrefsPath, userPrefs); err != nil {
			logger.Warn("save preferences", zap.Error(err))
		}
	}

	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	userAgent := "sprig"
	if opts.Version != "" {
		userAgent += "/" + opts.Version
	}
	client, err := bloomify.NewClient(cfg.APIURL,
		bloomify.WithLogger(logger),
		bloomify.WithDeviceID(userPrefs.DeviceID),
		bloomify.WithUserAgent(userAgent),
		bloomify.WithStager(c),
	)
	if err != nil {
		return nil, fmt.Errorf("init bloomify client: %w", err)
	}

	svc := account.New(account.Options{
		API:       client,
		Store:     &state.Store{},
		Cache:     c,
		TokenPath: cfg.TokenPath,
		Logger:    logger,
	})

	return &Env{
		Config:  cfg,
		Prefs:   userPrefs,
		Logger:  logger,
		Cache:   c,
		Client:  client,
		Account: svc,
	}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	_ = e.Logger.Sync()
}

// Run boots the sprig TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	env.Logger.Info("sprig starting",
		zap.String("version", opts.Version),
		zap.String("api_url", env.Config.APIURL),
		zap.Bool("signed_in", env.Account.SignedIn()),
	)

	// Show the last known profile while the first sync is in flight.
	env.Account.RestoreCached()

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, env.Account, interval, env.Logger)

	uiOpts := ui.Options{
		Context:   ctx,
		Account:   env.Account,
		Store:     env.Account.Store(),
		Logger:    env.Logger,
		Prefs:     env.Prefs,
		PrefsPath: opts.PrefsPath,
		Currency:  env.Config.Currency,
		Version:   opts.Version,
		LogPath:   env.Config.LogPath(),
	}
	return ui.Run(uiOpts)
}

// ProfileReport is the signed-in user's summary with the configured
// display currency.
type ProfileReport struct {
	Summary  profile.Summary
	Currency string
}

// Profile syncs once and returns the signed-in user's summary. A failed
// sync falls back to the cached profile when there is one.
func Profile(ctx context.Context, opts Options) (ProfileReport, error) {
	env, err := Setup(opts)
	if err != nil {
		return ProfileReport{}, err
	}
	defer env.Close()

	if !env.Account.SignedIn() {
		return ProfileReport{}, account.ErrSignedOut
	}

	env.Account.RestoreCached()
	syncErr := env.Account.Sync(ctx)
	snap := env.Account.Store().Snapshot()
	if snap.Profile == nil {
		return ProfileReport{}, syncErr
	}
	if syncErr != nil {
		env.Logger.Warn("profile sync failed; using cached profile", zap.Error(syncErr))
	}
	return ProfileReport{
		Summary:  profile.Summarize(snap.Profile),
		Currency: env.Config.Currency,
	}, nil
}

// ClearCache removes cached data and returns the bytes freed.
func ClearCache(opts Options) (int64, error) {
	env, err := Setup(opts)
	if err != nil {
		return 0, err
	}
	defer env.Close()
	return env.Account.ClearCache()
}
