package content

import "strings"

// ExpandState tracks the single expanded entry of a list. The zero value
// has nothing expanded.
type ExpandState struct {
	key      Key
	expanded bool
}

// Toggle collapses key when it is the expanded entry, otherwise expands it
// and implicitly collapses whatever was open before.
func (s *ExpandState) Toggle(k Key) {
	if s.expanded && s.key == k {
		s.expanded = false
		s.key = Key{}
		return
	}
	s.key = k
	s.expanded = true
}

// Collapse closes the expanded entry, if any.
func (s *ExpandState) Collapse() {
	s.key = Key{}
	s.expanded = false
}

// Expanded returns the expanded key and whether one is set.
func (s ExpandState) Expanded() (Key, bool) {
	return s.key, s.expanded
}

// IsExpanded reports whether k is the expanded entry.
func (s ExpandState) IsExpanded(k Key) bool {
	return s.expanded && s.key == k
}

// SearchState is the per-screen query and expand state. It lives as long
// as the screen that owns it.
type SearchState struct {
	ExpandState
	query string
}

// SetQuery stores the lower-cased query. The expanded entry is untouched.
func (s *SearchState) SetQuery(text string) {
	s.query = strings.ToLower(text)
}

// Query returns the current lower-cased query.
func (s SearchState) Query() string {
	return s.query
}

// Visible filters a flat document with the current query.
func (s SearchState) Visible(entries []Entry) []Indexed {
	return Filter(entries, s.query)
}

// VisibleSections filters a grouped document with the current query.
func (s SearchState) VisibleSections(sections []Section) []IndexedSection {
	return FilterSections(sections, s.query)
}
