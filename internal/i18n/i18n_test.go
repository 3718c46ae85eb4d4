package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocalizer(t *testing.T) {
	tests := []struct {
		name string
		lang string
		id   string
		data map[string]any
		want string
	}{
		{name: "english", lang: "en", id: "patterns_title", want: "Design Patterns"},
		{name: "default language", lang: "", id: "category_behavioral", want: "Behavioral"},
		{name: "template data", lang: "en", id: "patterns_subtitle", data: map[string]any{"Count": 12}, want: "12 patterns"},
		{name: "ukrainian", lang: "uk", id: "footer_back", want: "Назад"},
		{name: "regional tag", lang: "uk-UA", id: "category_structural", want: "Структурні"},
		{name: "falls back to english", lang: "uk", id: "footer_open", want: "Open"},
		{name: "unsupported language", lang: "fr", id: "about_title", want: "About"},
		{name: "unknown id", lang: "en", id: "no_such_message", want: "no_such_message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.lang, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.want, l.Tf(tt.id, tt.data))
		})
	}
}

func TestLanguage(t *testing.T) {
	l, err := New("not a tag!", nil)
	require.NoError(t, err)
	assert.Equal(t, language.English, l.Language())

	l, err = New("uk", nil)
	require.NoError(t, err)
	assert.Equal(t, language.Ukrainian, l.Language())
}
