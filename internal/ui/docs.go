package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloomify/sprig/internal/content"
	"github.com/bloomify/sprig/internal/i18n"
)

const docModalWidth = 76

// docRow is one visible entry of a document after filtering.
type docRow struct {
	key     content.Key
	entry   content.Entry
	heading string // set on the first row of a group
	color   string
}

// docModal shows a searchable document whose entries expand one at a time.
// Flat documents keep every entry in group 0.
type docModal struct {
	loc     i18n.Localizer
	title   string
	flat    []content.Entry
	grouped []content.Section

	search    content.SearchState
	input     textinput.Model
	searching bool
	cursor    int
}

func newFlatDocModal(loc i18n.Localizer, title string, entries []content.Entry) *docModal {
	d := newDocModal(loc, title)
	d.flat = entries
	return d
}

func newGroupedDocModal(loc i18n.Localizer, title string, sections []content.Section) *docModal {
	d := newDocModal(loc, title)
	d.grouped = sections
	return d
}

func newDocModal(loc i18n.Localizer, title string) *docModal {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = loc.T("search.placeholder")
	input.CharLimit = 64
	return &docModal{loc: loc, title: title, input: input}
}

// rows lists the entries visible for the current query.
func (d *docModal) rows() []docRow {
	var out []docRow
	if d.grouped != nil {
		for _, s := range d.search.VisibleSections(d.grouped) {
			for i, e := range s.Entries {
				row := docRow{key: s.Key(e), entry: e.Entry, color: e.Entry.Color}
				if row.color == "" {
					row.color = s.Color
				}
				if i == 0 {
					row.heading = s.Title
				}
				out = append(out, row)
			}
		}
		return out
	}
	for _, e := range d.search.Visible(d.flat) {
		out = append(out, docRow{key: content.Key{Item: e.Index}, entry: e.Entry, color: e.Entry.Color})
	}
	return out
}

func (d *docModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if d.searching {
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd, false
		}
		return d, nil, false
	}

	if d.searching {
		switch keyMsg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			d.searching = false
			d.input.Blur()
			return d, nil, false
		case tea.KeyUp, tea.KeyDown:
			d.moveCursor(keyMsg.Type == tea.KeyDown)
			return d, nil, false
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		if strings.ToLower(d.input.Value()) != d.search.Query() {
			d.search.SetQuery(d.input.Value())
			d.cursor = 0
		}
		return d, cmd, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Quit):
		return d, nil, true
	case key.Matches(keyMsg, keys.Search):
		d.searching = true
		return d, d.input.Focus(), false
	case key.Matches(keyMsg, keys.Up):
		d.moveCursor(false)
	case key.Matches(keyMsg, keys.Down):
		d.moveCursor(true)
	case key.Matches(keyMsg, keys.Top):
		d.cursor = 0
	case key.Matches(keyMsg, keys.Bottom):
		d.cursor = len(d.rows()) - 1
	case key.Matches(keyMsg, keys.Activate):
		rows := d.rows()
		if d.cursor < len(rows) {
			d.search.Toggle(rows[d.cursor].key)
		}
	}
	d.clampCursor()
	return d, nil, false
}

func (d *docModal) moveCursor(down bool) {
	if down {
		d.cursor++
	} else {
		d.cursor--
	}
	d.clampCursor()
}

func (d *docModal) clampCursor() {
	n := len(d.rows())
	if d.cursor >= n {
		d.cursor = n - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

func (d *docModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	w := modalWidth(width, docModalWidth)
	inner := w - 6 // border and padding

	rows := d.rows()

	var header strings.Builder
	header.WriteString(styles.Text.Bold(true).Render(d.title))
	header.WriteString(styles.FaintText.Render(fmt.Sprintf("  %d", len(rows))))
	header.WriteString("\n")
	if d.searching || d.search.Query() != "" {
		header.WriteString(d.input.View())
	} else {
		header.WriteString(styles.FaintText.Render("/ " + d.loc.T("search.placeholder")))
	}

	vp := viewport.New(inner, modalHeight(height)-2)
	body, cursorLine := d.renderBody(styles, rows, inner)
	vp.SetContent(body)
	if cursorLine >= vp.Height {
		vp.SetYOffset(cursorLine - vp.Height + 2)
	}

	return styles.Modal.Width(w).Render(header.String() + "\n\n" + vp.View())
}

// renderBody returns the document body and the line of the cursor row.
func (d *docModal) renderBody(styles Styles, rows []docRow, width int) (string, int) {
	if len(rows) == 0 {
		return styles.MutedText.Render(d.loc.T("search.no_results", d.input.Value())), 0
	}

	var (
		lines      []string
		cursorLine int
	)
	for i, row := range rows {
		if row.heading != "" {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.SectionTitle.Render(strings.ToUpper(row.heading)))
		}

		expanded := d.search.IsExpanded(row.key)
		chevron := ternary(expanded, "▾", "▸")
		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(row.color))
		if row.color == "" {
			titleStyle = styles.Text
		}
		line := chevron + " " + titleStyle.Render(truncate(row.entry.Title, width-2))
		if i == d.cursor {
			cursorLine = len(lines)
			line = styles.Selected.Width(width).Render(line)
		}
		lines = append(lines, line)

		if !expanded {
			continue
		}
		if row.entry.Description != "" {
			lines = append(lines, styles.FaintText.Render("  "+truncate(row.entry.Description, width-2)))
		}
		for _, l := range wrap(row.entry.Body, width-2) {
			lines = append(lines, styles.Text.Render("  "+l))
		}
		for _, b := range row.entry.Bullets {
			for j, l := range wrap(b, width-4) {
				lines = append(lines, styles.MutedText.Render(ternary(j == 0, "  • ", "    ")+l))
			}
		}
	}
	return strings.Join(lines, "\n"), cursorLine
}
