package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_Defaults(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Vocabulary Trainer", l.GetText(KeyAppTitle))
	assert.Equal(t, "Get the definition!", l.GetText(KeyGetDefinition))
	assert.Equal(t, "Enter a word to look up", l.GetText(KeyEnterWord))
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{name: "russian", lang: "ru", want: "ru"},
		{name: "portuguese", lang: "pt", want: "pt"},
		{name: "system falls back to english", lang: "system", want: "en"},
		{name: "unknown keeps current", lang: "de", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			assert.Equal(t, tt.want, l.GetCurrentLanguage())
		})
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	assert.Equal(t, "Словарь", l.GetText(KeyDictionary))
	assert.Equal(t, "missing_key", l.GetText("missing_key"))

	delete(l.texts["ru"], KeyDictionary)
	assert.Equal(t, "Dictionary", l.GetText(KeyDictionary))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			_, ok := l.texts[lang][key]
			assert.Truef(t, ok, "language %s misses key %s", lang, key)
		}
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, `No entries found for "wordd"`, l.Format(KeyNoEntries, "wordd"))
	assert.Equal(t, "Did you mean: word, world", l.Format(KeyDidYouMean, "word, world"))
}
