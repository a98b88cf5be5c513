package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bloomify/sprig/internal/profile"
	"github.com/bloomify/sprig/internal/settings"
	"github.com/bloomify/sprig/internal/state"
)

// renderMain draws the header, profile card, settings list and footer.
func (m Model) renderMain() string {
	width := m.contentWidth()

	header := m.renderHeader()
	card := m.renderProfileCard(width)
	footer := m.renderFooter()

	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(card) - lipgloss.Height(footer)
	if listHeight < 1 {
		listHeight = 1
	}
	list := m.renderSettingsList(width, listHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, card, list, footer)
}

func (m Model) contentWidth() int {
	if m.width > LayoutMaxContentWidth {
		return LayoutMaxContentWidth
	}
	return m.width
}

// renderHeader draws the title bar with the sync indicator on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Join([]string{
		bg.Render("sprig", styles.AccentText.Bold(true)),
		bg.Render(m.loc.T("settings.title"), styles.Text),
	}, " · ")

	var status string
	switch {
	case !m.account.SignedIn():
		status = bg.Render("○ "+m.loc.T("item.token.none"), styles.MutedText)
	case m.snapshot.IsOffline():
		status = bg.Render("● offline", styles.DangerText)
	case m.snapshot.ProfileLoad == state.Pending:
		status = bg.Render("◌ syncing", styles.WarningText)
	default:
		status = bg.Render("● online", styles.SuccessText)
	}
	right := bg.Join([]string{bg.Render(m.theme.Name, styles.MutedText), status}, "  ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := bg.Spaces(1) + left + bg.Spaces(gap) + right + bg.Spaces(1)
	return bg.FillLine(line, m.width)
}

// renderProfileCard draws the avatar badge and the user's summary.
func (m Model) renderProfileCard(width int) string {
	styles := m.theme.Styles()
	snap := m.snapshot
	summary := m.summary()

	avatar := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Accent)).
		Foreground(lipgloss.Color(m.theme.Background)).
		Bold(true).
		Padding(0, 1).
		Render(summary.Initials())

	name := styles.Text.Bold(true).Render(summary.DisplayName)
	if summary.IsVerified {
		name += " " + styles.SuccessText.Render("✓ "+m.loc.T("profile.verified"))
	}

	var details []string
	switch {
	case snap.Profile == nil && snap.ProfileLoad == state.Failed:
		details = append(details, styles.DangerText.Render(m.loc.T("profile.failed")))
		if snap.LastError != nil {
			details = append(details, styles.FaintText.Render(truncate(snap.LastError.Error(), width-12)))
		}
	case snap.Profile == nil && m.account.SignedIn():
		details = append(details, styles.MutedText.Render(m.loc.T("profile.loading")))
	default:
		details = append(details, styles.MutedText.Render(strings.Join([]string{
			summary.UserTypeLabel(),
			summary.RatingLabel(),
			summary.BookingsLabel(),
			summary.BalanceLabel(m.currency),
		}, " · ")))
		if summary.PictureURL != "" {
			details = append(details, styles.FaintText.Render(truncateMiddle(summary.PictureURL, width-12)))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{name}, details...)...)
	inner := lipgloss.JoinHorizontal(lipgloss.Top, avatar, "  ", body)

	cardWidth := width - 2
	if cardWidth < 10 {
		cardWidth = 10
	}
	return styles.Card.Width(cardWidth).Render(inner)
}

func (m Model) summary() profile.Summary {
	return profile.Summarize(m.snapshot.Profile)
}

// renderSettingsList draws every section and scrolls so the cursor row is
// visible within height lines.
func (m Model) renderSettingsList(width, height int) string {
	styles := m.theme.Styles()
	separator := styles.FaintText.Render("  " + strings.Repeat("─", max(width-4, 1)))

	var (
		lines       []string
		cursorStart int
		cursorEnd   int
	)
	selected := settings.Cursor{Section: -1}
	if len(m.cursors) > 0 {
		selected = m.cursors[m.cursor]
	}

	for si, section := range m.sections {
		lines = append(lines, "")
		lines = append(lines, styles.SectionTitle.Render(" "+strings.ToUpper(section.Title)))

		itemIndex := 0
		rows := section.Rows(func(item settings.Item) string {
			isSel := selected == settings.Cursor{Section: si, Item: itemIndex}
			itemIndex++
			return m.renderRow(item, isSel, width)
		}, separator)

		for ri, row := range rows {
			rowLines := strings.Split(row, "\n")
			// Rows alternate with separators, so items sit at even indexes.
			if ri%2 == 0 && selected == (settings.Cursor{Section: si, Item: ri / 2}) {
				cursorStart = len(lines)
				cursorEnd = cursorStart + len(rowLines) - 1
			}
			lines = append(lines, rowLines...)
		}
	}

	offset := 0
	if cursorEnd >= height {
		offset = cursorEnd - height + 1
	}
	if offset > cursorStart {
		offset = cursorStart
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	if offset > end {
		offset = end
	}

	visible := lines[offset:end]
	for len(visible) < height {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}

// renderRow draws one settings item. Only interactive rows get the
// trailing chevron.
func (m Model) renderRow(item settings.Item, selected bool, width int) string {
	styles := m.theme.Styles()

	marker := "  "
	if selected {
		marker = styles.AccentText.Render("▌ ")
	}

	icon := lipgloss.NewStyle().Foreground(lipgloss.Color(item.Color)).Render(item.Icon)

	titleStyle := styles.Text
	if item.Action != settings.ActionNone && !item.Enabled {
		titleStyle = styles.FaintText
	}
	if selected {
		titleStyle = titleStyle.Bold(true)
	}
	title := titleStyle.Render(item.Title)

	trailing := item.Trailing
	if m.busy[item.Action] {
		trailing = "…"
	}
	right := styles.MutedText.Render(trailing)
	if item.Interactive() {
		if trailing != "" {
			right += " "
		}
		right += styles.AccentText.Render("›")
	}

	left := marker + icon + "  " + title
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	if selected {
		line = styles.Selected.Width(width).Render(line)
	}

	if width < LayoutCompactWidth || item.Subtitle == "" {
		return line
	}
	subtitle := styles.MutedText.Render("     " + truncate(item.Subtitle, width-6))
	return line + "\n" + subtitle
}

// renderFooter shows the active toast or the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.toast != nil {
		style := styles.InfoText
		switch m.toast.kind {
		case toastSuccess:
			style = styles.SuccessText
		case toastError:
			style = styles.DangerText
		}
		return styles.Footer.Render(style.Render(m.toast.text))
	}

	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, styles.AccentText.Render(h.Key)+" "+h.Desc)
	}
	return styles.Footer.Render(strings.Join(parts, "  "))
}
