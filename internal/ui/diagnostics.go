package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloomify/sprig/internal/logtail"
)

// diagnosticsMsg carries the parsed tail of the log file.
type diagnosticsMsg struct {
	entries []logtail.Entry
	err     error
}

func loadDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, DiagnosticsLines)
		if err != nil {
			return diagnosticsMsg{err: err}
		}
		return diagnosticsMsg{entries: logtail.ParseLines(lines)}
	}
}

// diagnosticsModal shows recent log entries, newest at the bottom.
type diagnosticsModal struct {
	title   string
	entries []logtail.Entry
	err     error
	loaded  bool
	// scroll counts lines up from the bottom.
	scroll int
}

func newDiagnosticsModal(title string) *diagnosticsModal {
	return &diagnosticsModal{title: title}
}

func (d *diagnosticsModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case diagnosticsMsg:
		d.entries = msg.entries
		d.err = msg.err
		d.loaded = true
		d.scroll = 0
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Quit):
			return d, nil, true
		case key.Matches(msg, keys.Up):
			d.scroll++
		case key.Matches(msg, keys.Down):
			if d.scroll > 0 {
				d.scroll--
			}
		case key.Matches(msg, keys.PageUp):
			d.scroll += 10
		case key.Matches(msg, keys.PageDown):
			d.scroll = max(d.scroll-10, 0)
		case key.Matches(msg, keys.Bottom):
			d.scroll = 0
		case key.Matches(msg, keys.Top):
			d.scroll = len(d.entries)
		}
	}
	return d, nil, false
}

func (d *diagnosticsModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	w := modalWidth(width, 100)
	inner := w - 6

	var lines []string
	switch {
	case !d.loaded:
		lines = append(lines, styles.MutedText.Render("Loading..."))
	case d.err != nil:
		lines = append(lines, styles.DangerText.Render(truncate(d.err.Error(), inner)))
	case len(d.entries) == 0:
		lines = append(lines, styles.MutedText.Render("No log entries yet"))
	}
	for _, e := range d.entries {
		lines = append(lines, renderLogEntry(styles, e, inner))
	}

	vp := viewport.New(inner, modalHeight(height))
	vp.SetContent(strings.Join(lines, "\n"))
	bottom := len(lines) - vp.Height
	if bottom < 0 {
		bottom = 0
	}
	offset := bottom - d.scroll
	if offset < 0 {
		offset = 0
	}
	vp.SetYOffset(offset)

	header := styles.Text.Bold(true).Render(d.title) + "\n\n"
	return styles.Modal.Width(w).Render(header + vp.View())
}

func renderLogEntry(styles Styles, e logtail.Entry, width int) string {
	if e.Level == "" {
		return styles.FaintText.Render(truncate(e.Raw, width))
	}
	badge := styles.LevelStyle(e.Level).Render(e.Level)
	stamp := ""
	if !e.Time.IsZero() {
		stamp = styles.FaintText.Render(e.Time.Local().Format("15:04:05")) + " "
	}
	msg := e.Message
	for _, f := range e.Fields {
		msg += " " + f.Key + "=" + f.Value
	}
	return stamp + badge + " " + styles.Text.Render(truncate(msg, width-20))
}
