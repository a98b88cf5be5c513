package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		{Title: "Data Retention", Body: "We keep records for 30 days."},
		{Title: "Security", Body: "Encrypted at rest.", Bullets: []string{"TLS everywhere", "Hashed PASSWORDS"}},
		{Title: "Cookies", Body: "Local cache only."},
	}
}

func TestFilter_EmptyQueryReturnsAllInOrder(t *testing.T) {
	got := Filter(sampleEntries(), "")
	require.Len(t, got, 3)
	for i, e := range got {
		assert.Equal(t, i, e.Index)
	}
}

func TestFilter_MatchesTitleBodyAndBullets(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title", "security", []string{"Security"}},
		{"body", "30 days", []string{"Data Retention"}},
		{"bullet case-insensitive", "passwords", []string{"Security"}},
		{"upper-case query", "COOKIES", []string{"Cookies"}},
		{"shared substring", "e", []string{"Data Retention", "Security", "Cookies"}},
		{"no match", "stripe", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var titles []string
			for _, e := range Filter(sampleEntries(), tt.query) {
				titles = append(titles, e.Entry.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilter_ExcludedEntriesFailSubstringTest(t *testing.T) {
	entries := PrivacyPolicy()
	query := "provider"
	kept := map[int]bool{}
	for _, e := range Filter(entries, query) {
		kept[e.Index] = true
		assert.True(t, e.Entry.Matches(query))
	}
	for i, e := range entries {
		if !kept[i] {
			assert.False(t, e.Matches(query), "entry %q should have been kept", e.Title)
		}
	}
}

func TestFilter_DoesNotMutateInputAndIsIdempotent(t *testing.T) {
	entries := sampleEntries()
	first := Filter(entries, "sec")
	second := Filter(entries, "sec")
	assert.Equal(t, first, second)
	assert.Equal(t, sampleEntries(), entries)
}

func TestFilter_WhitespaceQueryIsLiteral(t *testing.T) {
	entries := []Entry{{Title: "Refund Policy"}, {Title: "Refunds"}}
	got := Filter(entries, "refund ")
	require.Len(t, got, 1)
	assert.Equal(t, "Refund Policy", got[0].Entry.Title)
}

func TestFilterSections_RefundScenario(t *testing.T) {
	got := FilterSections(TermsOfService(), "refund")
	require.Len(t, got, 1)
	assert.Equal(t, "Payments & Billing", got[0].Title)
	require.Len(t, got[0].Entries, 1)
	assert.Equal(t, "Refund Policy", got[0].Entries[0].Entry.Title)
}

func TestFilterSections_ChildrenAreExactlyTheMatches(t *testing.T) {
	sections := TermsOfService()
	for _, query := range []string{"48 hours", "account", "provider", "zzz", ""} {
		t.Run(query, func(t *testing.T) {
			got := FilterSections(sections, query)
			kept := map[int]IndexedSection{}
			for _, s := range got {
				kept[s.Index] = s
			}
			for si, s := range sections {
				var want []int
				for ei, e := range s.Entries {
					if e.Matches(query) {
						want = append(want, ei)
					}
				}
				ks, ok := kept[si]
				if len(want) == 0 {
					assert.False(t, ok, "section %q kept with no matches", s.Title)
					continue
				}
				require.True(t, ok, "section %q dropped despite matches", s.Title)
				var gotIdx []int
				for _, e := range ks.Entries {
					gotIdx = append(gotIdx, e.Index)
				}
				assert.Equal(t, want, gotIdx)
			}
		})
	}
}

func TestFilterSections_KeysStayStableWhileFiltering(t *testing.T) {
	all := FilterSections(TermsOfService(), "")
	filtered := FilterSections(TermsOfService(), "refund")
	require.Len(t, filtered, 1)

	s := filtered[0]
	k := s.Key(s.Entries[0])
	var found bool
	for _, as := range all {
		for _, e := range as.Entries {
			if as.Key(e) == k {
				found = true
				assert.Equal(t, "Refund Policy", e.Entry.Title)
			}
		}
	}
	assert.True(t, found)
}

func TestDocuments_Shape(t *testing.T) {
	assert.Len(t, PrivacyPolicy(), 10)
	for _, s := range TermsOfService() {
		assert.GreaterOrEqual(t, len(s.Entries), 2, s.Title)
		assert.LessOrEqual(t, len(s.Entries), 4, s.Title)
	}
	for _, e := range FAQ() {
		assert.NotEmpty(t, strings.TrimSpace(e.Body), e.Title)
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 14, Count(FilterSections(TermsOfService(), "")))
}
