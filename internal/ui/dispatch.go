package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/bloomify/sprig/internal/account"
	"github.com/bloomify/sprig/internal/cache"
	"github.com/bloomify/sprig/internal/content"
	"github.com/bloomify/sprig/internal/i18n"
	"github.com/bloomify/sprig/internal/prefs"
	"github.com/bloomify/sprig/internal/settings"
)

// actionResultMsg reports the outcome of an asynchronous row action.
type actionResultMsg struct {
	action settings.Action
	err    error
	freed  int64
	url    string
}

// revokeSessionMsg asks the model to revoke a session.
type revokeSessionMsg struct{ id string }

// uploadPictureMsg asks the model to upload the file at path.
type uploadPictureMsg struct{ path string }

// dispatch performs the action of an activated row.
func (m Model) dispatch(action settings.Action) (tea.Model, tea.Cmd) {
	if m.busy[action] {
		return m, nil
	}

	switch action {
	case settings.ActionEditProfile:
		m.showToast(m.loc.T("toast.edit_profile"), toastInfo)
		return m, nil

	case settings.ActionChangePicture:
		m.modal = newPictureModal(m.loc)
		return m, m.modal.(*pictureModal).focus()

	case settings.ActionRefreshProfile:
		return m.runAction(action, func(ctx context.Context, a Account) actionResultMsg {
			return actionResultMsg{err: a.Refresh(ctx)}
		})

	case settings.ActionSignOut:
		return m.runAction(action, func(_ context.Context, a Account) actionResultMsg {
			return actionResultMsg{err: a.SignOut()}
		})

	case settings.ActionRefreshToken:
		return m.runAction(action, func(ctx context.Context, a Account) actionResultMsg {
			return actionResultMsg{err: a.RefreshToken(ctx)}
		})

	case settings.ActionActiveSessions:
		m.modal = newSessionsModal(m.loc, m.snapshot)
		return m, nil

	case settings.ActionCycleTheme:
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.rebuild()
		return m, nil

	case settings.ActionToggleNotify:
		m.prefs.Notifications = !m.prefs.Notifications
		m.savePrefs()
		m.rebuild()
		return m, nil

	case settings.ActionCycleLanguage:
		m.prefs.Language = i18n.Next(m.loc.Code())
		m.loc = i18n.New(m.prefs.Language)
		m.savePrefs()
		m.rebuild()
		return m, nil

	case settings.ActionClearCache:
		return m.runAction(action, func(_ context.Context, a Account) actionResultMsg {
			freed, err := a.ClearCache()
			return actionResultMsg{err: err, freed: freed}
		})

	case settings.ActionOpenHelp:
		m.modal = newFlatDocModal(m.loc, m.loc.T("doc.help"), content.FAQ())
		return m, nil

	case settings.ActionOpenPrivacy:
		m.modal = newFlatDocModal(m.loc, m.loc.T("doc.privacy"), content.PrivacyPolicy())
		return m, nil

	case settings.ActionOpenTerms:
		m.modal = newGroupedDocModal(m.loc, m.loc.T("doc.terms"), content.TermsOfService())
		return m, nil

	case settings.ActionOpenDiagnostics:
		m.modal = newDiagnosticsModal(m.loc.T("doc.diagnostics"))
		return m, loadDiagnosticsCmd(m.logPath)
	}

	m.logger.Warn("unhandled settings action", zap.String("action", string(action)))
	return m, nil
}

// runAction marks action busy and runs fn off the UI goroutine.
func (m Model) runAction(action settings.Action, fn func(ctx context.Context, a Account) actionResultMsg) (tea.Model, tea.Cmd) {
	m.busy = cloneBusy(m.busy)
	m.busy[action] = true
	m.rebuild()

	parent := m.ctx
	acct := m.account
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, ActionTimeout)
		defer cancel()
		res := fn(ctx, acct)
		res.action = action
		return res
	}
}

func (m Model) startRevoke(id string) (tea.Model, tea.Cmd) {
	return m.runAction(settings.ActionActiveSessions, func(ctx context.Context, a Account) actionResultMsg {
		return actionResultMsg{err: a.RevokeSession(ctx, id)}
	})
}

func (m Model) startUpload(path string) (tea.Model, tea.Cmd) {
	return m.runAction(settings.ActionChangePicture, func(ctx context.Context, a Account) actionResultMsg {
		url, err := a.UploadPicture(ctx, path)
		return actionResultMsg{err: err, url: url}
	})
}

// handleResult turns an action outcome into a toast and a fresh snapshot.
func (m Model) handleResult(res actionResultMsg) (tea.Model, tea.Cmd) {
	m.busy = cloneBusy(m.busy)
	delete(m.busy, res.action)
	if sm, ok := m.modal.(*sessionsModal); ok && res.action == settings.ActionActiveSessions {
		sm.pending = ""
	}

	if res.err != nil {
		m.logger.Warn("settings action failed",
			zap.String("action", string(res.action)),
			zap.Error(res.err),
		)
	}

	switch {
	case errors.Is(res.err, account.ErrThrottled):
		m.showToast(m.loc.T("toast.throttled"), toastInfo)
	case errors.Is(res.err, account.ErrSignedOut):
		m.showToast(m.loc.T("item.token.none"), toastError)
	default:
		m.resultToast(res)
	}

	m.cacheSize = m.account.CacheSize()
	m.rebuild()
	return m, fetchSnapshotCmd(m.store)
}

func (m *Model) resultToast(res actionResultMsg) {
	failed := func(key string) {
		m.showToast(m.loc.T(key, truncate(res.err.Error(), 60)), toastError)
	}

	switch res.action {
	case settings.ActionRefreshProfile:
		if res.err != nil {
			m.showToast(m.loc.T("profile.failed"), toastError)
		}
	case settings.ActionRefreshToken:
		if res.err != nil {
			failed("toast.token_failed")
			return
		}
		m.showToast(m.loc.T("toast.token_refreshed"), toastSuccess)
	case settings.ActionSignOut:
		if res.err != nil {
			failed("toast.signout_failed")
			return
		}
		m.modal = nil
		m.showToast(m.loc.T("toast.signed_out"), toastSuccess)
	case settings.ActionClearCache:
		if res.err != nil {
			failed("toast.cache_failed")
			return
		}
		m.showToast(m.loc.T("toast.cache_cleared", cache.FormatBytes(res.freed)), toastSuccess)
	case settings.ActionChangePicture:
		if res.err != nil {
			failed("toast.upload_failed")
			return
		}
		m.showToast(m.loc.T("toast.upload_ok"), toastSuccess)
	case settings.ActionActiveSessions:
		if res.err != nil {
			failed("toast.session_failed")
			return
		}
		m.showToast(m.loc.T("toast.session_revoked"), toastSuccess)
	}
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save preferences failed", zap.Error(err))
		m.showToast(m.loc.T("toast.prefs_failed", truncate(err.Error(), 60)), toastError)
	}
}

func cloneBusy(in map[settings.Action]bool) map[settings.Action]bool {
	out := make(map[settings.Action]bool, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Toasts

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

type toast struct {
	text  string
	kind  toastKind
	until time.Time
}

func (m *Model) showToast(text string, kind toastKind) {
	m.toast = &toast{text: text, kind: kind, until: m.now().Add(ToastDuration)}
}
