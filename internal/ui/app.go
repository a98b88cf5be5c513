package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/bloomify/sprig/internal/i18n"
	"github.com/bloomify/sprig/internal/logging"
	"github.com/bloomify/sprig/internal/prefs"
	"github.com/bloomify/sprig/internal/session"
	"github.com/bloomify/sprig/internal/settings"
	"github.com/bloomify/sprig/internal/state"
)

// Account is what the settings screen asks of the account layer.
type Account interface {
	SignedIn() bool
	TokenInfo() *session.Info
	Refresh(ctx context.Context) error
	RefreshToken(ctx context.Context) error
	RevokeSession(ctx context.Context, id string) error
	UploadPicture(ctx context.Context, path string) (string, error)
	SignOut() error
	CacheSize() int64
	ClearCache() (int64, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Account   Account
	Store     *state.Store
	Logger    *zap.Logger
	Prefs     prefs.Prefs
	PrefsPath string
	Currency  string
	Version   string
	LogPath   string
	PollTick  time.Duration
	Now       func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	account   Account
	store     *state.Store
	logger    *zap.Logger
	prefs     prefs.Prefs
	prefsPath string
	currency  string
	version   string
	logPath   string
	pollTick  time.Duration
	now       func() time.Time

	// UI state
	theme  Theme
	keys   keyMap
	loc    i18n.Localizer
	width  int
	height int
	ready  bool

	// Data state
	snapshot  state.Snapshot
	cacheSize int64
	sections  []settings.Section
	cursors   []settings.Cursor
	cursor    int

	// Overlays
	showHelp bool
	modal    Modal
	toast    *toast
	busy     map[settings.Action]bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	m := Model{
		ctx:       ctx,
		account:   opts.Account,
		store:     store,
		logger:    logging.OrNop(opts.Logger),
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		currency:  opts.Currency,
		version:   opts.Version,
		logPath:   opts.LogPath,
		pollTick:  pollTick,
		now:       now,
		theme:     GetTheme(opts.Prefs.Theme),
		keys:      DefaultKeyMap(),
		loc:       i18n.New(opts.Prefs.Language),
		snapshot:  store.Snapshot(),
		busy:      make(map[settings.Action]bool),
	}
	m.cacheSize = m.account.CacheSize()
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.pollTick), fetchSnapshotCmd(m.store))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m.forwardToModal(msg)

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case actionResultMsg:
		return m.handleResult(msg)

	case revokeSessionMsg:
		return m.startRevoke(msg.id)

	case uploadPictureMsg:
		return m.startUpload(msg.path)
	}

	return m.forwardToModal(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			m.modal.View(m.theme, m.width, m.height),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
		)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		return m.forwardToModal(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		return m.dispatch(settings.ActionCycleTheme)
	case key.Matches(msg, m.keys.Refresh):
		return m.dispatch(settings.ActionRefreshProfile)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.cursors) - 1
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-5)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(5)
	case key.Matches(msg, m.keys.Activate):
		return m.activateCurrent()
	}
	m.clampCursor()
	return m, nil
}

func (m Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal == nil {
		return m, nil
	}
	next, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
	} else {
		m.modal = next
	}
	return m, cmd
}

// handleTick processes the UI refresh tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.toast != nil && !now.Before(m.toast.until) {
		m.toast = nil
	}
	// Token expiry labels move with the clock.
	m.rebuild()
	return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	if snap.Version == m.snapshot.Version && m.sections != nil {
		return
	}
	m.snapshot = snap
	m.cacheSize = m.account.CacheSize()
	if aware, ok := m.modal.(snapshotAware); ok {
		m.modal = aware.WithSnapshot(snap)
	}
	m.rebuild()
}

// rebuild recomputes the settings sections from the current state.
func (m *Model) rebuild() {
	summary := m.summary()
	m.sections = settings.Build(settings.Context{
		Localizer:     m.loc,
		Now:           m.now(),
		SignedIn:      m.account.SignedIn(),
		Verified:      summary.IsVerified,
		ProfileLoaded: m.snapshot.ProfileLoad == state.Succeeded,
		Token:         m.account.TokenInfo(),
		SessionCount:  len(m.snapshot.Sessions),
		Theme:         m.theme.Name,
		Notifications: m.prefs.Notifications,
		CacheSize:     m.cacheSize,
		DeviceID:      m.prefs.DeviceID,
		Version:       m.version,
	})
	m.cursors = settings.Flatten(m.sections)
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.cursors) {
		m.cursor = len(m.cursors) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// currentItem returns the item under the cursor.
func (m Model) currentItem() (settings.Item, bool) {
	if len(m.cursors) == 0 {
		return settings.Item{}, false
	}
	return settings.At(m.sections, m.cursors[m.cursor])
}

func (m Model) activateCurrent() (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}
	var (
		next tea.Model = m
		cmd  tea.Cmd
	)
	item.Activate(func(a settings.Action) {
		next, cmd = m.dispatch(a)
	})
	return next, cmd
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
