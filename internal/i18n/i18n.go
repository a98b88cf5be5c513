// Package i18n provides the localized strings of the settings screen,
// keyed by identifier.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Default is the language used when none or an unknown one is requested.
const Default = "en"

var supported = []string{"en", "sw"}

var languageNames = map[string]string{
	"en": "English",
	"sw": "Kiswahili",
}

// Localizer resolves string identifiers for one language.
type Localizer struct {
	code    string
	printer *message.Printer
}

var builtCatalog = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for code, table := range tables {
		tag := language.Make(code)
		for key, msg := range table {
			// Keys and messages are static; SetString only fails on
			// malformed tags.
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// New returns a Localizer for code, falling back to English.
func New(code string) Localizer {
	code = Normalize(code)
	return Localizer{
		code:    code,
		printer: message.NewPrinter(language.Make(code), message.Catalog(builtCatalog)),
	}
}

// Normalize maps code onto a supported language code.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	for _, s := range supported {
		if s == code {
			return code
		}
	}
	return Default
}

// Code returns the active language code.
func (l Localizer) Code() string {
	return l.code
}

// Name returns the human name of the active language.
func (l Localizer) Name() string {
	return languageNames[l.code]
}

// T returns the string for key, formatted with args. Unknown keys are
// returned as-is.
func (l Localizer) T(key string, args ...any) string {
	if l.printer == nil {
		return New(Default).T(key, args...)
	}
	return l.printer.Sprintf(key, args...)
}

// Languages lists the supported language codes in cycle order.
func Languages() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// Next returns the language after code in the cycle.
func Next(code string) string {
	code = Normalize(code)
	for i, s := range supported {
		if s == code {
			return supported[(i+1)%len(supported)]
		}
	}
	return Default
}
