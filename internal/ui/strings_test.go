package ui

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "abc", 10, "abc"},
		{"trimmed", "  abc  ", 10, "abc"},
		{"ellipsis", "abcdefghij", 6, "abc..."},
		{"tiny limit", "abcdef", 2, "ab"},
		{"no limit", "abcdef", 0, "abcdef"},
		{"wide glyphs", "日本語テキスト", 8, "日本..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("https://cdn.example/a/b/c.jpg", 11)
	if got != "https…c.jpg" {
		t.Fatalf("truncateMiddle = %q, want %q", got, "https…c.jpg")
	}
	if len([]rune(got)) > 11 {
		t.Fatalf("got %q (%d runes), want <=11", got, len([]rune(got)))
	}
}

func TestWrap(t *testing.T) {
	got := wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrap = %#v, want %#v", got, want)
	}
	if got := wrap("   ", 10); got != nil {
		t.Fatalf("wrap blank = %#v, want nil", got)
	}
	if got := wrap("a b", 0); !reflect.DeepEqual(got, []string{"a b"}) {
		t.Fatalf("wrap no width = %#v", got)
	}
}

func TestWrap_MeasuresCellWidth(t *testing.T) {
	got := wrap("日本 語テ キスト ok", 6)
	want := []string{"日本", "語テ", "キスト", "ok"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrap = %#v, want %#v", got, want)
	}
	for _, line := range got {
		if w := ansi.StringWidth(line); w > 6 {
			t.Fatalf("line %q is %d cells wide, want <=6", line, w)
		}
	}
}

func TestModalWidth(t *testing.T) {
	if got := modalWidth(0, 60); got != 60 {
		t.Fatalf("modalWidth unknown terminal = %d, want 60", got)
	}
	if got := modalWidth(200, 60); got != 60 {
		t.Fatalf("modalWidth wide = %d, want 60", got)
	}
	if got := modalWidth(50, 60); got != 46 {
		t.Fatalf("modalWidth narrow = %d, want 46", got)
	}
	if got := modalWidth(10, 60); got != 20 {
		t.Fatalf("modalWidth tiny = %d, want 20", got)
	}
}
