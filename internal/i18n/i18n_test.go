package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesHaveTheSameKeys(t *testing.T) {
	for key := range english {
		_, ok := swahili[key]
		assert.True(t, ok, "sw missing %q", key)
	}
	for key := range swahili {
		_, ok := english[key]
		assert.True(t, ok, "en missing %q", key)
	}
}

func TestLocalizer_T(t *testing.T) {
	en := New("en")
	assert.Equal(t, "Settings", en.T("settings.title"))
	assert.Equal(t, "3 signed-in devices", en.T("item.sessions.sub", 3))
	assert.Equal(t, "no.such.key", en.T("no.such.key"))

	sw := New("sw-KE")
	assert.Equal(t, "sw", sw.Code())
	assert.Equal(t, "Mipangilio", sw.T("settings.title"))
	assert.Equal(t, "Kiswahili", sw.Name())
}

func TestLocalizer_ZeroValueUsesDefault(t *testing.T) {
	var l Localizer
	assert.Equal(t, "Settings", l.T("settings.title"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", Normalize(""))
	assert.Equal(t, "en", Normalize("fr"))
	assert.Equal(t, "sw", Normalize(" SW "))
	assert.Equal(t, "en", Normalize("en_GB"))
}

func TestNext(t *testing.T) {
	assert.Equal(t, "sw", Next("en"))
	assert.Equal(t, "en", Next("sw"))
	assert.Equal(t, "sw", Next("unknown"))
	assert.Equal(t, []string{"en", "sw"}, Languages())
}
