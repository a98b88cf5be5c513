// Package settings describes the rows of the settings screen. Rows carry a
// typed Action instead of a callback; the owning controller dispatches it.
package settings

import "strings"

// Action names what activating a row should do.
type Action string

// Actions understood by the UI controller.
const (
	ActionNone            Action = ""
	ActionEditProfile     Action = "edit_profile"
	ActionChangePicture   Action = "change_picture"
	ActionSignOut         Action = "sign_out"
	ActionRefreshToken    Action = "refresh_token"
	ActionActiveSessions  Action = "active_sessions"
	ActionCycleTheme      Action = "cycle_theme"
	ActionToggleNotify    Action = "toggle_notifications"
	ActionCycleLanguage   Action = "cycle_language"
	ActionClearCache      Action = "clear_cache"
	ActionOpenHelp        Action = "open_help"
	ActionOpenPrivacy     Action = "open_privacy"
	ActionOpenTerms       Action = "open_terms"
	ActionOpenDiagnostics Action = "open_diagnostics"
	ActionRefreshProfile  Action = "refresh_profile"
)

// Item is one row of a section.
type Item struct {
	Title    string
	Subtitle string
	Icon     string
	Color    string
	Enabled  bool
	Action   Action
	Trailing string
}

// Interactive reports whether activating the item does anything. Disabled
// rows and rows without an action are display-only.
func (i Item) Interactive() bool {
	return i.Enabled && i.Action != ActionNone
}

// Activate passes the item's action to dispatch when the item is
// interactive. It reports whether dispatch was called.
func (i Item) Activate(dispatch func(Action)) bool {
	if !i.Interactive() || dispatch == nil {
		return false
	}
	dispatch(i.Action)
	return true
}

// Section is a titled, ordered group of items.
type Section struct {
	Title string
	Items []Item
}

// Rows renders each item with render and places separator between
// consecutive rows. An empty section yields no rows.
func (s Section) Rows(render func(Item) string, separator string) []string {
	if len(s.Items) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.Items)*2-1)
	for i, item := range s.Items {
		if i > 0 {
			out = append(out, separator)
		}
		out = append(out, render(item))
	}
	return out
}

// Render places the title above Rows, joined with newlines. An empty
// section renders only its title.
func (s Section) Render(render func(Item) string, separator string) string {
	return strings.Join(append([]string{s.Title}, s.Rows(render, separator)...), "\n")
}

// Cursor addresses an item across a list of sections.
type Cursor struct {
	Section int
	Item    int
}

// Flatten lists the addresses of every item in order.
func Flatten(sections []Section) []Cursor {
	var out []Cursor
	for si, s := range sections {
		for ii := range s.Items {
			out = append(out, Cursor{Section: si, Item: ii})
		}
	}
	return out
}

// At returns the item addressed by c.
func At(sections []Section, c Cursor) (Item, bool) {
	if c.Section < 0 || c.Section >= len(sections) {
		return Item{}, false
	}
	items := sections[c.Section].Items
	if c.Item < 0 || c.Item >= len(items) {
		return Item{}, false
	}
	return items[c.Item], true
}
