package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloomify/sprig/internal/bloomify"
	"github.com/bloomify/sprig/internal/i18n"
	"github.com/bloomify/sprig/internal/state"
)

// sessionsModal lists signed-in devices and revokes the selected one.
type sessionsModal struct {
	loc      i18n.Localizer
	sessions []bloomify.Session
	load     state.LoadState
	cursor   int
	pending  string
}

func newSessionsModal(loc i18n.Localizer, snap state.Snapshot) *sessionsModal {
	s := &sessionsModal{loc: loc}
	s.WithSnapshot(snap)
	return s
}

func (s *sessionsModal) WithSnapshot(snap state.Snapshot) Modal {
	s.sessions = snap.Sessions
	s.load = snap.SessionsLoad
	if s.pending != "" && !s.has(s.pending) {
		s.pending = ""
	}
	if s.cursor >= len(s.sessions) {
		s.cursor = len(s.sessions) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	return s
}

func (s *sessionsModal) has(id string) bool {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return true
		}
	}
	return false
}

func (s *sessionsModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Quit):
		return s, nil, true
	case key.Matches(keyMsg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if s.cursor < len(s.sessions)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, keys.Revoke):
		if s.pending != "" || s.cursor >= len(s.sessions) {
			return s, nil, false
		}
		target := s.sessions[s.cursor]
		if target.Current {
			return s, nil, false
		}
		s.pending = target.ID
		id := target.ID
		return s, func() tea.Msg { return revokeSessionMsg{id: id} }, false
	}
	return s, nil, false
}

func (s *sessionsModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	w := modalWidth(width, 64)
	inner := w - 6

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(s.loc.T("sessions.title")))
	b.WriteString("\n\n")

	switch {
	case len(s.sessions) == 0 && s.load == state.Pending:
		b.WriteString(styles.MutedText.Render(s.loc.T("sessions.loading")))
	case len(s.sessions) == 0:
		b.WriteString(styles.MutedText.Render(s.loc.T("sessions.empty")))
	}

	limit := modalHeight(height) / 2
	for i, sess := range s.sessions {
		if i >= limit {
			break
		}
		label := truncate(sess.Label(), inner-16)
		if sess.Current {
			label += " " + styles.SuccessText.Render("("+s.loc.T("sessions.current")+")")
		}
		if sess.ID == s.pending {
			label += " " + styles.WarningText.Render("…")
		}
		line := ternary(i == s.cursor, "▌ ", "  ") + label
		if i == s.cursor {
			line = styles.Selected.Width(inner).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("    " + truncate(sessionDetail(sess), inner-4)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("x revoke · esc close"))
	return styles.Modal.Width(w).Render(b.String())
}

func sessionDetail(s bloomify.Session) string {
	var parts []string
	if s.Location != "" {
		parts = append(parts, s.Location)
	}
	if s.IP != "" {
		parts = append(parts, s.IP)
	}
	if t := s.ParsedLastActive(); !t.IsZero() {
		parts = append(parts, "active "+t.Local().Format(time.DateTime))
	}
	return strings.Join(parts, " · ")
}
