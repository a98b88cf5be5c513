package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloomify/sprig/internal/i18n"
)

// pictureModal prompts for the path of a new profile picture.
type pictureModal struct {
	loc   i18n.Localizer
	input textinput.Model
}

func newPictureModal(loc i18n.Localizer) *pictureModal {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "~/Pictures/me.jpg"
	input.CharLimit = 512
	return &pictureModal{loc: loc, input: input}
}

func (p *pictureModal) focus() tea.Cmd {
	return p.input.Focus()
}

func (p *pictureModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return p, nil, true
		case tea.KeyEnter:
			path := strings.TrimSpace(p.input.Value())
			if path == "" {
				return p, nil, false
			}
			return p, func() tea.Msg { return uploadPictureMsg{path: path} }, true
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd, false
}

func (p *pictureModal) View(theme Theme, width, _ int) string {
	styles := theme.Styles()
	w := modalWidth(width, 60)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(p.loc.T("item.change_picture")))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(p.loc.T("item.change_picture.sub")))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(p.loc.T("picture.prompt")))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter upload · esc cancel"))
	return styles.Modal.Width(w).Render(b.String())
}
