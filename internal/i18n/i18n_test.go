package i18n

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeQuac/Gratulations/internal/config"
)

// translationKeys are the keys config.go expects to exist in every locale.
var translationKeys = []string{
	config.TKeyEvtSummary,
	config.TKeyEvtSummaryAge,
	config.TKeyEvtSummaryBirth,
	config.TKeyTodayNone,
	config.TKeyTodayEntry,
	config.TKeyNotifyTitle,
}

func loadLocale(t *testing.T, lang string) map[string]interface{} {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
	require.NoError(t, err, "must load locale %s", lang)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &m), "locale %s must be valid JSON", lang)
	return m
}

// TestLocaleIntegrity ensures every translation key referenced from config.go
// exists in every shipped locale, and that no locale carries orphan keys.
func TestLocaleIntegrity(t *testing.T) {
	defined := make(map[string]bool, len(translationKeys))
	for _, k := range translationKeys {
		defined[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		m := loadLocale(t, lang)

		for _, key := range translationKeys {
			_, exists := m[key]
			assert.Truef(t, exists, "key %q missing in locale %s", key, lang)
		}
		for key := range m {
			assert.Truef(t, defined[key], "locale %s carries unused key %q", lang, key)
		}
	}
}

func TestTranslator_German(t *testing.T) {
	trans := New("de")

	assert.ElementsMatch(t, config.SupportedLanguages, trans.Languages)
	assert.Equal(t, "Heute hat niemand Geburtstag.", trans.Msg(config.TKeyTodayNone))
	assert.Equal(t, "Mira wird heute 34!", trans.MsgData(config.TKeyTodayEntry,
		map[string]interface{}{"Name": "Mira", "Age": 34}))
}

func TestTranslator_English(t *testing.T) {
	trans := New("en")

	assert.Equal(t, "Nobody has a birthday today.", trans.Msg(config.TKeyTodayNone))
	assert.Equal(t, "Birthday: Mira (34)", trans.MsgData(config.TKeyEvtSummaryAge,
		map[string]interface{}{"Name": "Mira", "Age": 34}))
}

func TestTranslator_UnknownLanguageFallsBack(t *testing.T) {
	trans := New("fr")

	// The bundle default is German.
	assert.Equal(t, "Heute hat niemand Geburtstag.", trans.Msg(config.TKeyTodayNone))
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	trans := New("de")

	assert.Equal(t, "no_such_key", trans.Msg("no_such_key"))
}
