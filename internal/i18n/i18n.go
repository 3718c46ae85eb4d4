// Package i18n provides the localized strings of the application.
package i18n

import (
	"embed"
	"fmt"
	"log/slog"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// DefaultLanguage is used for messages missing from the requested language.
var DefaultLanguage = language.English

// Localizer looks up messages for one language.
type Localizer struct {
	localizer *goi18n.Localizer
	tag       language.Tag
	logger    *slog.Logger
}

// New creates a Localizer for lang, a BCP 47 tag such as "en" or "uk-UA".
// An empty or unsupported lang falls back to DefaultLanguage.
func New(lang string, logger *slog.Logger) (*Localizer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}

	tag := DefaultLanguage
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			logger.Warn("Unsupported language; using default", "language", lang, "error", err)
		} else {
			matcher := language.NewMatcher(bundle.LanguageTags())
			_, index, _ := matcher.Match(parsed)
			tag = bundle.LanguageTags()[index]
		}
	}

	return &Localizer{
		localizer: goi18n.NewLocalizer(bundle, tag.String(), DefaultLanguage.String()),
		tag:       tag,
		logger:    logger,
	}, nil
}

func newBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	return bundle, nil
}

// Language returns the language messages are looked up in.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// T returns the message for id, or id itself when no language has it.
func (l *Localizer) T(id string) string {
	return l.Tf(id, nil)
}

// Tf is T with template data for messages containing placeholders.
func (l *Localizer) Tf(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		l.logger.Debug("Missing translation", "id", id, "language", l.tag.String(), "error", err)
		if msg == "" {
			return id
		}
	}
	return msg
}
