package content

import "strings"

// Entry is a single titled, expandable block of document text.
type Entry struct {
	Title       string
	Description string
	Color       string
	Body        string
	Bullets     []string
}

// Section groups entries under a heading (terms of service chapters).
type Section struct {
	Title   string
	Color   string
	Entries []Entry
}

// Key identifies an entry within a document. Flat documents use Section 0.
type Key struct {
	Section int
	Item    int
}

// Indexed pairs an entry with its position in the unfiltered document so
// expand keys survive filtering.
type Indexed struct {
	Index int
	Entry Entry
}

// IndexedSection is a section after filtering.
type IndexedSection struct {
	Index   int
	Title   string
	Color   string
	Entries []Indexed
}

// Key returns the expand key for an entry of this section.
func (s IndexedSection) Key(e Indexed) Key {
	return Key{Section: s.Index, Item: e.Index}
}

// Matches reports whether query is empty or a case-insensitive substring
// of the entry's title, body or any bullet. Query is used as given; no
// trimming happens here.
func (e Entry) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Body), q) {
		return true
	}
	for _, b := range e.Bullets {
		if strings.Contains(strings.ToLower(b), q) {
			return true
		}
	}
	return false
}

// Filter returns the entries visible for query in declaration order. The
// input slice is never modified.
func Filter(entries []Entry, query string) []Indexed {
	out := make([]Indexed, 0, len(entries))
	for i, e := range entries {
		if e.Matches(query) {
			out = append(out, Indexed{Index: i, Entry: e})
		}
	}
	return out
}

// FilterSections keeps a section iff at least one of its entries matches
// and drops the non-matching siblings from the kept sections.
func FilterSections(sections []Section, query string) []IndexedSection {
	out := make([]IndexedSection, 0, len(sections))
	for i, s := range sections {
		matched := Filter(s.Entries, query)
		if len(matched) == 0 {
			continue
		}
		out = append(out, IndexedSection{
			Index:   i,
			Title:   s.Title,
			Color:   s.Color,
			Entries: matched,
		})
	}
	return out
}

// Count returns the number of entries across the filtered sections.
func Count(sections []IndexedSection) int {
	n := 0
	for _, s := range sections {
		n += len(s.Entries)
	}
	return n
}
